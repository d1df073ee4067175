package state

import (
	"github.com/RiciYT/shopping-app-ai/internal/model"
	"github.com/RiciYT/shopping-app-ai/internal/pricing"
)

// AppState aggregates everything the application knows. It is a value: the
// reducer never mutates its input, it returns an updated copy with
// copy-on-write slices.
type AppState struct {
	ShoppingLists []model.ShoppingList
	// CurrentListID is empty when no list is selected.
	CurrentListID string
	Settings      model.Settings
	History       []model.HistoryEntry
	PriceRecords  []model.PriceRecord
	IsLoading     bool
}

// NewAppState returns the initial pre-load state.
func NewAppState() AppState {
	return AppState{
		ShoppingLists: []model.ShoppingList{},
		Settings:      model.DefaultSettings(),
		History:       []model.HistoryEntry{},
		PriceRecords:  []model.PriceRecord{},
		IsLoading:     true,
	}
}

// Reduce is the pure state-transition function. Unknown or mismatched IDs
// produce no-op transitions, never errors; an unhandled action returns the
// state unchanged.
func Reduce(state AppState, action Action) AppState {
	switch a := action.(type) {
	case SetLoading:
		state.IsLoading = a.Loading
		return state

	case LoadData:
		if a.Lists != nil {
			state.ShoppingLists = a.Lists
		}
		if a.Settings != nil {
			state.Settings = *a.Settings
		}
		if a.History != nil {
			state.History = a.History
		}
		if a.PriceRecords != nil {
			state.PriceRecords = a.PriceRecords
		}
		if a.CurrentListID != nil {
			state.CurrentListID = *a.CurrentListID
		}
		state.IsLoading = false
		return state

	case AddList:
		state.ShoppingLists = append(copyLists(state.ShoppingLists), a.List)
		state.CurrentListID = a.List.ID
		return state

	case UpdateList:
		state.ShoppingLists = withList(state.ShoppingLists, a.List.ID,
			func(model.ShoppingList) model.ShoppingList { return a.List })
		return state

	case DeleteList:
		kept := make([]model.ShoppingList, 0, len(state.ShoppingLists))
		for _, l := range state.ShoppingLists {
			if l.ID != a.ID {
				kept = append(kept, l)
			}
		}
		state.ShoppingLists = kept
		if state.CurrentListID == a.ID {
			state.CurrentListID = ""
		}
		return state

	case SetCurrentList:
		state.CurrentListID = a.ID
		return state

	case AddProduct:
		state.ShoppingLists = withList(state.ShoppingLists, a.ListID,
			func(l model.ShoppingList) model.ShoppingList {
				l.Items = append(copyItems(l.Items), a.Product)
				l.UpdatedAt = a.Now
				return l
			})
		return state

	case UpdateProduct:
		state.ShoppingLists = withList(state.ShoppingLists, a.ListID,
			func(l model.ShoppingList) model.ShoppingList {
				items := copyItems(l.Items)
				for i := range items {
					if items[i].ID == a.Product.ID {
						items[i] = a.Product
					}
				}
				l.Items = items
				l.UpdatedAt = a.Now
				return l
			})
		return state

	case DeleteProduct:
		state.ShoppingLists = withList(state.ShoppingLists, a.ListID,
			func(l model.ShoppingList) model.ShoppingList {
				kept := make([]model.Product, 0, len(l.Items))
				for _, item := range l.Items {
					if item.ID != a.ProductID {
						kept = append(kept, item)
					}
				}
				l.Items = kept
				l.UpdatedAt = a.Now
				return l
			})
		return state

	case ToggleProduct:
		state.ShoppingLists = withList(state.ShoppingLists, a.ListID,
			func(l model.ShoppingList) model.ShoppingList {
				items := copyItems(l.Items)
				for i := range items {
					if items[i].ID == a.ProductID {
						items[i].IsChecked = !items[i].IsChecked
						items[i].UpdatedAt = a.Now
					}
				}
				l.Items = items
				l.UpdatedAt = a.Now
				return l
			})
		return state

	case CompleteList:
		list, ok := findList(state.ShoppingLists, a.ID)
		if !ok {
			return state
		}

		entry := model.HistoryEntry{
			ID:          a.EntryID,
			ListID:      list.ID,
			ListName:    list.Name,
			ItemCount:   len(list.Items),
			TotalPrice:  pricing.Total(list.Items),
			CompletedAt: a.Now,
		}

		now := a.Now
		state.ShoppingLists = withList(state.ShoppingLists, a.ID,
			func(l model.ShoppingList) model.ShoppingList {
				l.IsArchived = true
				l.CompletedAt = &now
				l.UpdatedAt = now
				return l
			})
		state.History = append([]model.HistoryEntry{entry}, state.History...)
		return state

	case UpdateSettings:
		state.Settings = a.Patch.Apply(state.Settings)
		return state

	case AddHistoryEntry:
		state.History = append([]model.HistoryEntry{a.Entry}, state.History...)
		return state

	case ClearHistory:
		state.History = []model.HistoryEntry{}
		return state

	case AddPriceRecord:
		state.PriceRecords = append(copyRecords(state.PriceRecords), a.Record)
		return state

	default:
		return state
	}
}

func findList(lists []model.ShoppingList, id string) (model.ShoppingList, bool) {
	for _, l := range lists {
		if l.ID == id {
			return l, true
		}
	}
	return model.ShoppingList{}, false
}

// withList returns a new slice where the list matching id has been replaced
// by fn's result. A non-matching id leaves every element unchanged.
func withList(lists []model.ShoppingList, id string, fn func(model.ShoppingList) model.ShoppingList) []model.ShoppingList {
	out := make([]model.ShoppingList, len(lists))
	copy(out, lists)
	for i := range out {
		if out[i].ID == id {
			out[i] = fn(out[i])
		}
	}
	return out
}

func copyLists(lists []model.ShoppingList) []model.ShoppingList {
	out := make([]model.ShoppingList, len(lists))
	copy(out, lists)
	return out
}

func copyItems(items []model.Product) []model.Product {
	out := make([]model.Product, len(items))
	copy(out, items)
	return out
}

func copyRecords(records []model.PriceRecord) []model.PriceRecord {
	out := make([]model.PriceRecord, len(records))
	copy(out, records)
	return out
}
