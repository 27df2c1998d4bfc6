package listsync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOps resolves or rejects per item id, configured up front.
type fakeOps struct {
	mu      sync.Mutex
	fail    map[string]bool
	deleted []string
}

func newFakeOps() *fakeOps {
	return &fakeOps{fail: make(map[string]bool)}
}

func (f *fakeOps) failFor(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[id] = true
}

func (f *fakeOps) result(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[id] {
		return errors.New("request rejected")
	}
	return nil
}

func (f *fakeOps) Create(ctx context.Context, item testItem) error {
	return f.result(item.ID)
}

func (f *fakeOps) SetCompleted(ctx context.Context, itemID string, completed bool) error {
	return f.result(itemID)
}

func (f *fakeOps) Delete(ctx context.Context, itemID string) error {
	if err := f.result(itemID); err != nil {
		return err
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, itemID)
	f.mu.Unlock()
	return nil
}

func TestSessionAddVisibleBeforeRequestResolves(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	item := testItem{ID: PlaceholderID(), Name: "Milk"}
	s.Add(context.Background(), item)

	// Synchronous visibility, no waiting on the request.
	view := s.View()
	require.Len(t, view, 1)
	assert.Equal(t, item.ID, view[0].ID)

	s.Wait()
	assert.Len(t, s.View(), 1)
}

func TestSessionAddRollsBackOnReject(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	var reported error
	s.OnError = func(err error) { reported = err }

	item := testItem{ID: PlaceholderID(), Name: "Milk"}
	ops.failFor(item.ID)
	s.Add(context.Background(), item)
	s.Wait()

	assert.Empty(t, s.View())
	assert.Error(t, reported)
}

func TestSessionToggleFlipsSynchronously(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	snapshots := make(chan []testItem, 1)
	snapshots <- []testItem{{ID: "srv-1", Name: "Milk", Done: false}}
	close(snapshots)
	s.Watch(context.Background(), snapshots)

	s.Toggle(context.Background(), "srv-1", true)

	view := s.View()
	require.Len(t, view, 1)
	assert.True(t, view[0].Done)
	s.Wait()
}

func TestSessionToggleRevertsOnReject(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	snapshots := make(chan []testItem, 1)
	snapshots <- []testItem{{ID: "srv-1", Name: "Milk", Done: false}}
	close(snapshots)
	s.Watch(context.Background(), snapshots)

	ops.failFor("srv-1")
	s.Toggle(context.Background(), "srv-1", true)
	s.Wait()

	view := s.View()
	require.Len(t, view, 1)
	assert.False(t, view[0].Done, "visible state reverts to pre-toggle value")
}

func TestSessionDeleteReappearsOnReject(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	snapshots := make(chan []testItem, 1)
	snapshots <- []testItem{{ID: "srv-1", Name: "Milk"}}
	close(snapshots)
	s.Watch(context.Background(), snapshots)

	ops.failFor("srv-1")
	s.Delete(context.Background(), "srv-1")
	s.Wait()

	assert.Len(t, s.View(), 1, "failed delete reappears")
}

func TestSessionClearCompletedPartialFailure(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	snapshots := make(chan []testItem, 1)
	snapshots <- []testItem{
		{ID: "srv-1", Name: "Milk", Done: true},
		{ID: "srv-2", Name: "Eggs", Done: true},
		{ID: "srv-3", Name: "Jam", Done: false},
	}
	close(snapshots)
	s.Watch(context.Background(), snapshots)

	ops.failFor("srv-2")
	failed := s.ClearCompleted(context.Background())

	assert.Equal(t, 1, failed)

	view := s.View()
	require.Len(t, view, 2)
	assert.ElementsMatch(t, []string{"srv-2", "srv-3"}, ids(view), "only the failed id reappears")
	assert.ElementsMatch(t, []string{"srv-1"}, ops.deleted)
}

func TestSessionWatchAppliesSnapshots(t *testing.T) {
	ops := newFakeOps()
	s := NewSession[testItem](ops)

	snapshots := make(chan []testItem)
	done := make(chan struct{})
	go func() {
		s.Watch(context.Background(), snapshots)
		close(done)
	}()

	snapshots <- []testItem{{ID: "srv-1", Name: "Milk"}}
	snapshots <- []testItem{{ID: "srv-1", Name: "Milk"}, {ID: "srv-2", Name: "Eggs"}}
	close(snapshots)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop on channel close")
	}

	assert.Len(t, s.View(), 2)
}
