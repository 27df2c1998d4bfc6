// Package listsync keeps an optimistic local view of a remotely persisted
// list. Mutations apply to the view synchronously, requests go out
// asynchronously, and every failure rolls back exactly the state it set.
package listsync

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Entry is a list item the reconciler can merge. IdentityKey matches a
// local placeholder to the server-confirmed copy that replaces it.
type Entry[T any] interface {
	ItemID() string
	IdentityKey() string
	Completed() bool
	WithCompleted(completed bool) T
}

// PlaceholderID synthesizes a local id embedding the creation time so
// provisional ordering is stable before the server assigns a permanent one.
func PlaceholderID() string {
	return fmt.Sprintf("local-%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
}

// Reconciler merges an authoritative collection with client-only optimistic
// state. It is not safe for concurrent use, a Session serializes access.
type Reconciler[T Entry[T]] struct {
	authoritative []T

	optimistic     []T
	overrides      map[string]bool
	pendingDeletes map[string]struct{}
	createdAt      map[string]int64
}

func NewReconciler[T Entry[T]]() *Reconciler[T] {
	return &Reconciler[T]{
		overrides:      make(map[string]bool),
		pendingDeletes: make(map[string]struct{}),
		createdAt:      make(map[string]int64),
	}
}

// SetAuthoritative replaces the server-confirmed collection. Overrides that
// the new collection already satisfies are self-clearing, and optimistic
// placeholders whose server twin has arrived are dropped.
func (r *Reconciler[T]) SetAuthoritative(items []T) {
	r.authoritative = items

	for _, item := range items {
		if want, ok := r.overrides[item.ItemID()]; ok && item.Completed() == want {
			delete(r.overrides, item.ItemID())
		}
	}

	confirmed := make(map[string]struct{}, len(items))
	for _, item := range items {
		confirmed[item.IdentityKey()] = struct{}{}
	}

	kept := r.optimistic[:0]
	for _, item := range r.optimistic {
		if _, ok := confirmed[item.IdentityKey()]; !ok {
			kept = append(kept, item)
		}
	}
	r.optimistic = kept
}

// AddOptimistic inserts a placeholder and records its creation timestamp
// under its identity key so the server twin inherits the display position.
func (r *Reconciler[T]) AddOptimistic(item T) {
	r.optimistic = append(r.optimistic, item)
	r.createdAt[item.IdentityKey()] = time.Now().UnixNano()
}

// RemoveOptimistic rolls back a placeholder whose create request failed.
func (r *Reconciler[T]) RemoveOptimistic(itemID string) {
	kept := r.optimistic[:0]
	for _, item := range r.optimistic {
		if item.ItemID() != itemID {
			kept = append(kept, item)
		}
	}
	r.optimistic = kept
}

// SetOverride records a pending completion state for an in-flight toggle.
func (r *Reconciler[T]) SetOverride(itemID string, completed bool) {
	r.overrides[itemID] = completed
}

// ClearOverride reverts a failed toggle.
func (r *Reconciler[T]) ClearOverride(itemID string) {
	delete(r.overrides, itemID)
}

// MarkDeleted suppresses an item while its delete request is outstanding.
func (r *Reconciler[T]) MarkDeleted(itemID string) {
	r.pendingDeletes[itemID] = struct{}{}
}

// UnmarkDeleted reverts a failed delete, the item reappears.
func (r *Reconciler[T]) UnmarkDeleted(itemID string) {
	delete(r.pendingDeletes, itemID)
}

// Merge computes the view to render: authoritative plus optimistic items,
// completion overrides applied, pending deletes dropped, sorted newest
// first by recorded creation time with a zero fallback.
func (r *Reconciler[T]) Merge() []T {
	merged := make([]T, 0, len(r.authoritative)+len(r.optimistic))
	merged = append(merged, r.authoritative...)
	merged = append(merged, r.optimistic...)

	view := merged[:0]
	for _, item := range merged {
		if _, deleted := r.pendingDeletes[item.ItemID()]; deleted {
			continue
		}
		if want, ok := r.overrides[item.ItemID()]; ok && item.Completed() != want {
			item = item.WithCompleted(want)
		}
		view = append(view, item)
	}

	sort.SliceStable(view, func(i, j int) bool {
		return r.createdAt[view[i].IdentityKey()] > r.createdAt[view[j].IdentityKey()]
	})
	return view
}

// CompletedIDs returns the ids of completed items in the current view,
// the target set for a clear-completed sweep.
func (r *Reconciler[T]) CompletedIDs() []string {
	ids := []string{}
	for _, item := range r.Merge() {
		if item.Completed() {
			ids = append(ids, item.ItemID())
		}
	}
	return ids
}
