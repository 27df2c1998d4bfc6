package listsync

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	Done      bool
	CreatedAt int64
}

func (i testItem) ItemID() string { return i.ID }

func (i testItem) IdentityKey() string {
	return fmt.Sprintf("%s|%s|%d|%t", strings.ToLower(strings.TrimSpace(i.Name)), i.Category, i.Quantity, i.Done)
}

func (i testItem) Completed() bool { return i.Done }

func (i testItem) WithCompleted(completed bool) testItem {
	i.Done = completed
	return i
}

func ids(items []testItem) []string {
	out := make([]string, len(items))
	for n, item := range items {
		out[n] = item.ID
	}
	return out
}

func TestAddOptimisticVisibleImmediately(t *testing.T) {
	r := NewReconciler[testItem]()
	r.SetAuthoritative([]testItem{{ID: "srv-1", Name: "Milk"}})

	r.AddOptimistic(testItem{ID: PlaceholderID(), Name: "Eggs"})

	view := r.Merge()
	require.Len(t, view, 2)
	assert.Equal(t, "Eggs", view[0].Name, "new item sorts first")
}

func TestRemoveOptimisticRollsBack(t *testing.T) {
	r := NewReconciler[testItem]()
	placeholder := testItem{ID: PlaceholderID(), Name: "Eggs"}
	r.AddOptimistic(placeholder)
	require.Len(t, r.Merge(), 1)

	r.RemoveOptimistic(placeholder.ID)
	assert.Empty(t, r.Merge())
}

func TestServerTwinReplacesPlaceholder(t *testing.T) {
	r := NewReconciler[testItem]()
	placeholder := testItem{ID: PlaceholderID(), Name: " Eggs ", Category: "dairy", Quantity: 12}
	r.AddOptimistic(placeholder)

	// The authoritative copy arrives with trimmed casing normalized away.
	r.SetAuthoritative([]testItem{{ID: "srv-9", Name: "eggs", Category: "dairy", Quantity: 12}})

	view := r.Merge()
	require.Len(t, view, 1, "exactly one copy, not two")
	assert.Equal(t, "srv-9", view[0].ID)
}

func TestDifferentIdentityKeepsBoth(t *testing.T) {
	r := NewReconciler[testItem]()
	r.AddOptimistic(testItem{ID: PlaceholderID(), Name: "Eggs", Quantity: 12})
	r.SetAuthoritative([]testItem{{ID: "srv-9", Name: "Eggs", Quantity: 6}})

	assert.Len(t, r.Merge(), 2, "quantity differs, not the same logical item")
}

func TestOverrideWinsWhilePending(t *testing.T) {
	r := NewReconciler[testItem]()
	r.SetAuthoritative([]testItem{{ID: "srv-1", Name: "Milk", Done: false}})

	r.SetOverride("srv-1", true)
	view := r.Merge()
	require.Len(t, view, 1)
	assert.True(t, view[0].Done)

	r.ClearOverride("srv-1")
	assert.False(t, r.Merge()[0].Done, "revert after failed toggle")
}

func TestOverrideSelfClearsOnAuthoritativeMatch(t *testing.T) {
	r := NewReconciler[testItem]()
	r.SetAuthoritative([]testItem{{ID: "srv-1", Name: "Milk", Done: false}})
	r.SetOverride("srv-1", true)

	// Server confirms the toggle, the override must clear itself so a later
	// authoritative un-complete is not masked.
	r.SetAuthoritative([]testItem{{ID: "srv-1", Name: "Milk", Done: true}})
	assert.True(t, r.Merge()[0].Done)

	r.SetAuthoritative([]testItem{{ID: "srv-1", Name: "Milk", Done: false}})
	assert.False(t, r.Merge()[0].Done, "stale override must not win")
}

func TestPendingDeleteSuppressesAndReverts(t *testing.T) {
	r := NewReconciler[testItem]()
	r.SetAuthoritative([]testItem{{ID: "srv-1", Name: "Milk"}, {ID: "srv-2", Name: "Eggs"}})

	r.MarkDeleted("srv-1")
	assert.Equal(t, []string{"srv-2"}, ids(r.Merge()))

	r.UnmarkDeleted("srv-1")
	assert.Len(t, r.Merge(), 2, "failed delete reappears")
}

func TestSortStableAcrossTwinReplacement(t *testing.T) {
	r := NewReconciler[testItem]()
	r.SetAuthoritative([]testItem{{ID: "srv-old", Name: "Bread"}})

	first := testItem{ID: PlaceholderID(), Name: "Milk"}
	r.AddOptimistic(first)
	second := testItem{ID: PlaceholderID(), Name: "Eggs"}
	r.AddOptimistic(second)

	before := r.Merge()
	require.Equal(t, []string{second.ID, first.ID, "srv-old"}, ids(before))

	// The first placeholder's twin arrives. Its identity key carries the
	// recorded creation time, so the item must not jump in the list.
	r.SetAuthoritative([]testItem{
		{ID: "srv-old", Name: "Bread"},
		{ID: "srv-milk", Name: "milk"},
	})

	after := r.Merge()
	require.Len(t, after, 3)
	assert.Equal(t, "Eggs", after[0].Name)
	assert.Equal(t, "milk", after[1].Name)
	assert.Equal(t, "Bread", after[2].Name)
}

func TestCompletedIDs(t *testing.T) {
	r := NewReconciler[testItem]()
	r.SetAuthoritative([]testItem{
		{ID: "srv-1", Name: "Milk", Done: true},
		{ID: "srv-2", Name: "Eggs", Done: false},
		{ID: "srv-3", Name: "Jam", Done: true},
	})
	r.SetOverride("srv-2", true)

	assert.ElementsMatch(t, []string{"srv-1", "srv-2", "srv-3"}, r.CompletedIDs())
}

func TestPlaceholderIDUnique(t *testing.T) {
	a := PlaceholderID()
	b := PlaceholderID()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "local-"))
}
