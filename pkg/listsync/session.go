package listsync

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// Ops is the remote side of a list: discrete mutation requests that may
// fail. The reconciler only assumes the authoritative collection will
// eventually reflect a successful call.
type Ops[T Entry[T]] interface {
	Create(ctx context.Context, item T) error
	SetCompleted(ctx context.Context, itemID string, completed bool) error
	Delete(ctx context.Context, itemID string) error
}

// Session binds a reconciler to its remote operations and an authoritative
// snapshot feed. All state access is serialized behind one mutex, mutations
// return after the synchronous local step while the request runs behind.
type Session[T Entry[T]] struct {
	mu         sync.Mutex
	reconciler *Reconciler[T]
	ops        Ops[T]

	// OnError surfaces a failed request to the user. Optional.
	OnError func(err error)

	wg sync.WaitGroup
}

func NewSession[T Entry[T]](ops Ops[T]) *Session[T] {
	return &Session[T]{
		reconciler: NewReconciler[T](),
		ops:        ops,
	}
}

// Watch consumes authoritative snapshots until the channel closes or the
// context is cancelled. Run it in its own goroutine.
func (s *Session[T]) Watch(ctx context.Context, snapshots <-chan []T) {
	for {
		select {
		case <-ctx.Done():
			return
		case items, ok := <-snapshots:
			if !ok {
				return
			}
			s.mu.Lock()
			s.reconciler.SetAuthoritative(items)
			s.mu.Unlock()
		}
	}
}

// View returns the merged list as it should be rendered right now.
func (s *Session[T]) View() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconciler.Merge()
}

// Add shows the placeholder immediately and issues the create request in
// the background. On failure the placeholder is removed again.
func (s *Session[T]) Add(ctx context.Context, item T) {
	s.mu.Lock()
	s.reconciler.AddOptimistic(item)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.ops.Create(ctx, item); err != nil {
			s.mu.Lock()
			s.reconciler.RemoveOptimistic(item.ItemID())
			s.mu.Unlock()
			s.report(err)
		}
	}()
}

// Toggle flips the visible completion state immediately. On failure the
// override is cleared and the pre-toggle state shows again. On success the
// override stays until an authoritative snapshot confirms it.
func (s *Session[T]) Toggle(ctx context.Context, itemID string, completed bool) {
	s.mu.Lock()
	s.reconciler.SetOverride(itemID, completed)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.ops.SetCompleted(ctx, itemID, completed); err != nil {
			s.mu.Lock()
			s.reconciler.ClearOverride(itemID)
			s.mu.Unlock()
			s.report(err)
		}
	}()
}

// Delete hides the item immediately. On failure it reappears.
func (s *Session[T]) Delete(ctx context.Context, itemID string) {
	s.mu.Lock()
	s.reconciler.MarkDeleted(itemID)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.ops.Delete(ctx, itemID); err != nil {
			s.mu.Lock()
			s.reconciler.UnmarkDeleted(itemID)
			s.mu.Unlock()
			s.report(err)
		}
	}()
}

// ClearCompleted hides every completed item synchronously, then issues the
// deletes concurrently. Items whose delete failed are un-marked and counted,
// successes stay suppressed.
func (s *Session[T]) ClearCompleted(ctx context.Context) int {
	s.mu.Lock()
	ids := s.reconciler.CompletedIDs()
	for _, id := range ids {
		s.reconciler.MarkDeleted(id)
	}
	s.mu.Unlock()

	var failedMu sync.Mutex
	failed := 0

	p := pool.New().WithMaxGoroutines(8)
	for _, id := range ids {
		p.Go(func() {
			if err := s.ops.Delete(ctx, id); err != nil {
				s.mu.Lock()
				s.reconciler.UnmarkDeleted(id)
				s.mu.Unlock()

				failedMu.Lock()
				failed++
				failedMu.Unlock()
				s.report(err)
			}
		})
	}
	p.Wait()

	return failed
}

// Wait blocks until every in-flight background request has settled. Meant
// for tests and orderly teardown.
func (s *Session[T]) Wait() {
	s.wg.Wait()
}

func (s *Session[T]) report(err error) {
	if s.OnError != nil {
		s.OnError(err)
	}
}
