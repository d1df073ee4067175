package state

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiciYT/shopping-app-ai/internal/catalog"
	"github.com/RiciYT/shopping-app-ai/internal/model"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newList(id, name string, items ...model.Product) model.ShoppingList {
	return model.ShoppingList{
		ID: id, Name: name, Items: items,
		CreatedAt: t0, UpdatedAt: t0,
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestReduceSetLoading(t *testing.T) {
	s := NewAppState()
	assert.True(t, s.IsLoading)
	s = Reduce(s, SetLoading{Loading: false})
	assert.False(t, s.IsLoading)
}

func TestReduceLoadData(t *testing.T) {
	s := NewAppState()
	lists := []model.ShoppingList{newList("l1", "Groceries")}
	settings := model.DefaultSettings()
	settings.Currency = "CHF"
	current := "l1"

	s = Reduce(s, LoadData{
		Lists:         lists,
		Settings:      &settings,
		History:       []model.HistoryEntry{},
		PriceRecords:  []model.PriceRecord{},
		CurrentListID: &current,
	})

	assert.False(t, s.IsLoading)
	assert.Equal(t, lists, s.ShoppingLists)
	assert.Equal(t, "CHF", s.Settings.Currency)
	assert.Equal(t, "l1", s.CurrentListID)
}

func TestReduceLoadDataPartial(t *testing.T) {
	s := NewAppState()
	s.Settings.Currency = "EUR"

	s = Reduce(s, LoadData{Lists: []model.ShoppingList{newList("l1", "A")}})

	assert.False(t, s.IsLoading)
	assert.Equal(t, "EUR", s.Settings.Currency, "absent fields stay untouched")
	assert.Len(t, s.ShoppingLists, 1)
}

func TestReduceAddListSetsCurrent(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "Groceries")})
	s = Reduce(s, AddList{List: newList("l2", "Hardware")})

	require.Len(t, s.ShoppingLists, 2)
	assert.Equal(t, "l2", s.CurrentListID, "newest list becomes current")
}

func TestReduceDeleteListClearsCurrent(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A")})
	s = Reduce(s, AddList{List: newList("l2", "B")})

	s = Reduce(s, DeleteList{ID: "l1"})
	assert.Equal(t, "l2", s.CurrentListID, "deleting another list keeps focus")

	s = Reduce(s, DeleteList{ID: "l2"})
	assert.Empty(t, s.ShoppingLists)
	assert.Equal(t, "", s.CurrentListID, "deleting the current list clears focus")
}

func TestReduceAddProduct(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A")})

	later := t0.Add(time.Minute)
	p := model.Product{ID: "p1", Name: "Milk", Category: catalog.DairyEggs, Quantity: 1, Unit: "L"}
	s = Reduce(s, AddProduct{ListID: "l1", Product: p, Now: later})

	require.Len(t, s.ShoppingLists[0].Items, 1)
	assert.Equal(t, "Milk", s.ShoppingLists[0].Items[0].Name)
	assert.Equal(t, later, s.ShoppingLists[0].UpdatedAt)
}

func TestReduceAddProductUnknownListIsNoop(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A")})

	before := s
	s = Reduce(s, AddProduct{ListID: "nope", Product: model.Product{ID: "p1"}, Now: t0})
	assert.Equal(t, before.ShoppingLists, s.ShoppingLists)
}

func TestReduceUpdateAndDeleteProduct(t *testing.T) {
	p := model.Product{ID: "p1", Name: "Milk", Quantity: 1}
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A", p)})

	p.Quantity = 2
	s = Reduce(s, UpdateProduct{ListID: "l1", Product: p, Now: t0.Add(time.Minute)})
	assert.Equal(t, 2.0, s.ShoppingLists[0].Items[0].Quantity)

	s = Reduce(s, DeleteProduct{ListID: "l1", ProductID: "p1", Now: t0.Add(2 * time.Minute)})
	assert.Empty(t, s.ShoppingLists[0].Items)

	// Mismatched product IDs are silent no-ops.
	s = Reduce(s, DeleteProduct{ListID: "l1", ProductID: "ghost", Now: t0})
	assert.Empty(t, s.ShoppingLists[0].Items)
}

func TestReduceToggleProductTwiceRestoresState(t *testing.T) {
	p := model.Product{ID: "p1", Name: "Milk"}
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A", p)})

	s = Reduce(s, ToggleProduct{ListID: "l1", ProductID: "p1", Now: t0.Add(time.Minute)})
	assert.True(t, s.ShoppingLists[0].Items[0].IsChecked)

	s = Reduce(s, ToggleProduct{ListID: "l1", ProductID: "p1", Now: t0.Add(2 * time.Minute)})
	assert.False(t, s.ShoppingLists[0].Items[0].IsChecked)
}

func TestReduceCompleteList(t *testing.T) {
	items := []model.Product{
		{ID: "p1", Name: "Milk", Quantity: 2, Price: dec("1.50")},
		{ID: "p2", Name: "Bread", Quantity: 1},
	}
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "Groceries", items...)})

	done := t0.Add(time.Hour)
	s = Reduce(s, CompleteList{ID: "l1", EntryID: "h1", Now: done})

	list := s.ShoppingLists[0]
	assert.True(t, list.IsArchived)
	require.NotNil(t, list.CompletedAt)
	assert.Equal(t, done, *list.CompletedAt)

	require.Len(t, s.History, 1)
	entry := s.History[0]
	assert.Equal(t, "h1", entry.ID)
	assert.Equal(t, "l1", entry.ListID)
	assert.Equal(t, "Groceries", entry.ListName)
	assert.Equal(t, 2, entry.ItemCount)
	assert.True(t, entry.TotalPrice.Equal(decimal.RequireFromString("3.00")),
		"unpriced items count as zero: got %s", entry.TotalPrice)
}

func TestReduceCompleteListUnknownIsNoop(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, CompleteList{ID: "ghost", EntryID: "h1", Now: t0})
	assert.Empty(t, s.History)
}

func TestReduceCompleteListTwiceIsPermissive(t *testing.T) {
	// Double completion is not guarded; it appends a second history entry.
	// Guarding is the UI's responsibility.
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A")})
	s = Reduce(s, CompleteList{ID: "l1", EntryID: "h1", Now: t0})
	s = Reduce(s, CompleteList{ID: "l1", EntryID: "h2", Now: t0.Add(time.Minute)})
	assert.Len(t, s.History, 2)
}

func TestReduceHistoryPrependOrder(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddHistoryEntry{Entry: model.HistoryEntry{ID: "h1"}})
	s = Reduce(s, AddHistoryEntry{Entry: model.HistoryEntry{ID: "h2"}})
	require.Len(t, s.History, 2)
	assert.Equal(t, "h2", s.History[0].ID, "newest entry first")

	s = Reduce(s, ClearHistory{})
	assert.Empty(t, s.History)
}

func TestReduceUpdateSettingsMerges(t *testing.T) {
	s := NewAppState()
	dark := true
	s = Reduce(s, UpdateSettings{Patch: model.SettingsPatch{DarkMode: &dark}})
	assert.True(t, s.Settings.DarkMode)
	assert.Equal(t, "USD", s.Settings.Currency, "untouched fields keep defaults")
	assert.True(t, s.Settings.EnablePriceTracking)
}

func TestReduceAddPriceRecord(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddPriceRecord{Record: model.PriceRecord{ID: "r1", Price: decimal.NewFromInt(2)}})
	s = Reduce(s, AddPriceRecord{Record: model.PriceRecord{ID: "r2", Price: decimal.NewFromInt(3)}})
	require.Len(t, s.PriceRecords, 2)
	assert.Equal(t, "r1", s.PriceRecords[0].ID, "price log is append-only, in order")
}

func TestReduceUnknownActionReturnsStateUnchanged(t *testing.T) {
	s := NewAppState()
	s = Reduce(s, AddList{List: newList("l1", "A")})
	got := Reduce(s, unknownAction{})
	assert.Equal(t, s, got)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	p := model.Product{ID: "p1", Name: "Milk"}
	original := NewAppState()
	original = Reduce(original, AddList{List: newList("l1", "A", p)})

	_ = Reduce(original, ToggleProduct{ListID: "l1", ProductID: "p1", Now: t0.Add(time.Minute)})

	assert.False(t, original.ShoppingLists[0].Items[0].IsChecked,
		"reducer must copy, not mutate shared slices")

	_ = Reduce(original, DeleteList{ID: "l1"})
	assert.Len(t, original.ShoppingLists, 1)
}
