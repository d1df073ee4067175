package state

import (
	"time"

	"github.com/RiciYT/shopping-app-ai/internal/model"
)

// Action is the closed set of state transitions understood by Reduce.
// Actions are plain data; anything time- or identity-dependent (timestamps,
// generated IDs) is filled in by the Store before dispatch so the reducer
// stays pure.
type Action interface{ isAction() }

// SetLoading toggles the startup loading flag.
type SetLoading struct{ Loading bool }

// LoadData bulk-replaces state from persisted data and clears the loading
// flag. Nil fields are left untouched.
type LoadData struct {
	Lists         []model.ShoppingList
	Settings      *model.Settings
	History       []model.HistoryEntry
	PriceRecords  []model.PriceRecord
	CurrentListID *string
}

// AddList appends a new list and makes it current.
type AddList struct{ List model.ShoppingList }

// UpdateList replaces the list with the same ID.
type UpdateList struct{ List model.ShoppingList }

// DeleteList removes a list; deleting the current list clears the current
// selection.
type DeleteList struct{ ID string }

// SetCurrentList changes focus without touching list data. An empty ID
// clears the selection.
type SetCurrentList struct{ ID string }

// AddProduct appends a product to a list and bumps the list's UpdatedAt.
type AddProduct struct {
	ListID  string
	Product model.Product
	Now     time.Time
}

// UpdateProduct replaces the product with a matching ID within the list.
type UpdateProduct struct {
	ListID  string
	Product model.Product
	Now     time.Time
}

// DeleteProduct removes a product from a list by ID.
type DeleteProduct struct {
	ListID    string
	ProductID string
	Now       time.Time
}

// ToggleProduct flips a product's checked flag and bumps both the item's and
// the list's UpdatedAt.
type ToggleProduct struct {
	ListID    string
	ProductID string
	Now       time.Time
}

// CompleteList archives a list, stamps CompletedAt, and prepends a derived
// history entry. EntryID identifies the new history entry.
type CompleteList struct {
	ID      string
	EntryID string
	Now     time.Time
}

// UpdateSettings shallow-merges a partial settings update.
type UpdateSettings struct{ Patch model.SettingsPatch }

// AddHistoryEntry prepends an entry to the history.
type AddHistoryEntry struct{ Entry model.HistoryEntry }

// ClearHistory empties the history.
type ClearHistory struct{}

// AddPriceRecord appends to the price log.
type AddPriceRecord struct{ Record model.PriceRecord }

func (SetLoading) isAction()      {}
func (LoadData) isAction()        {}
func (AddList) isAction()         {}
func (UpdateList) isAction()      {}
func (DeleteList) isAction()      {}
func (SetCurrentList) isAction()  {}
func (AddProduct) isAction()      {}
func (UpdateProduct) isAction()   {}
func (DeleteProduct) isAction()   {}
func (ToggleProduct) isAction()   {}
func (CompleteList) isAction()    {}
func (UpdateSettings) isAction()  {}
func (AddHistoryEntry) isAction() {}
func (ClearHistory) isAction()    {}
func (AddPriceRecord) isAction()  {}
