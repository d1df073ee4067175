// Package state holds the in-memory application state and the reducer that
// is its single writer. The Store serializes every transition behind one
// mutex and persists changed collections fire-and-forget through a
// background writer; consistency comes from sequential dispatch alone, there
// are no locks or transactions at the storage layer.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/RiciYT/shopping-app-ai/internal/catalog"
	"github.com/RiciYT/shopping-app-ai/internal/grouping"
	"github.com/RiciYT/shopping-app-ai/internal/model"
	"github.com/RiciYT/shopping-app-ai/internal/storage"
)

// Store owns the AppState. It is constructed once at the composition root
// and handed to whichever layer needs to dispatch actions.
type Store struct {
	mu      sync.Mutex
	state   AppState
	adapter storage.Adapter
	persist *persister
	log     zerolog.Logger

	now   func() time.Time
	newID func() string
}

// Option customizes a Store; used by tests to pin clocks and IDs.
type Option func(*Store)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the ID source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store over the given persistence adapter and starts its
// background writer. Call Close when done.
func New(adapter storage.Adapter, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		state:   NewAppState(),
		adapter: adapter,
		log:     log,
		now:     time.Now,
		newID:   model.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.persist = newPersister(adapter, log)
	return s
}

// Close flushes pending saves and stops the background writer.
func (s *Store) Close() {
	s.persist.close()
}

// Flush synchronously writes any pending saves; tests and shutdown paths use
// it to make persistence deterministic.
func (s *Store) Flush(ctx context.Context) {
	s.persist.flush(ctx)
}

// Load populates state from storage. The four collections load in parallel
// and land atomically in a single LoadData transition; on failure the
// loading flag is cleared and defaults remain.
func (s *Store) Load(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		lists    []model.ShoppingList
		settings model.Settings
		history  []model.HistoryEntry
		records  []model.PriceRecord
		errs     [4]error
	)

	wg.Add(4)
	go func() { defer wg.Done(); lists, errs[0] = s.adapter.LoadLists(ctx) }()
	go func() { defer wg.Done(); settings, errs[1] = s.adapter.LoadSettings(ctx) }()
	go func() { defer wg.Done(); history, errs[2] = s.adapter.LoadHistory(ctx) }()
	go func() { defer wg.Done(); records, errs[3] = s.adapter.LoadPriceRecords(ctx) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.log.Error().Err(err).Msg("loading persisted data failed, starting with defaults")
			s.Dispatch(SetLoading{Loading: false})
			return err
		}
	}

	currentID := ""
	if len(lists) > 0 {
		currentID = lists[0].ID
	}
	s.Dispatch(LoadData{
		Lists:         lists,
		Settings:      &settings,
		History:       history,
		PriceRecords:  records,
		CurrentListID: &currentID,
	})
	return nil
}

// Dispatch runs one state transition and schedules background saves for the
// collections the action touched. Saves are suppressed while the initial
// load is still in flight.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	loading := s.state.IsLoading
	lists := s.state.ShoppingLists
	settings := s.state.Settings
	history := s.state.History
	records := s.state.PriceRecords
	s.mu.Unlock()

	if loading {
		return
	}
	for _, col := range dirtyCollections(action) {
		switch col {
		case colLists:
			s.persist.enqueue(colLists, lists)
		case colSettings:
			s.persist.enqueue(colSettings, settings)
		case colHistory:
			s.persist.enqueue(colHistory, history)
		case colPriceRecords:
			s.persist.enqueue(colPriceRecords, records)
		}
	}
}

func dirtyCollections(action Action) []collection {
	switch action.(type) {
	case AddList, UpdateList, DeleteList, AddProduct, UpdateProduct,
		DeleteProduct, ToggleProduct:
		return []collection{colLists}
	case CompleteList:
		return []collection{colLists, colHistory}
	case UpdateSettings:
		return []collection{colSettings}
	case AddHistoryEntry, ClearHistory:
		return []collection{colHistory}
	case AddPriceRecord:
		return []collection{colPriceRecords}
	default:
		return nil
	}
}

// ProductDraft is the caller-supplied part of a new product; IDs and
// timestamps are generated here.
type ProductDraft struct {
	Name       string
	Category   catalog.Category
	Quantity   float64
	Unit       string
	IsChecked  bool
	Price      *decimal.Decimal
	Store      string
	Notes      string
	Autofilled bool
}

// AddList creates a new empty list, makes it current, and returns it.
func (s *Store) AddList(name string) model.ShoppingList {
	now := s.now()
	list := model.ShoppingList{
		ID:        s.newID(),
		Name:      name,
		Items:     []model.Product{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Dispatch(AddList{List: list})
	return list
}

// UpdateList replaces a list wholesale.
func (s *Store) UpdateList(list model.ShoppingList) {
	s.Dispatch(UpdateList{List: list})
}

// DeleteList removes a list by ID.
func (s *Store) DeleteList(listID string) {
	s.Dispatch(DeleteList{ID: listID})
}

// SetCurrentList changes the focused list; empty clears the selection.
func (s *Store) SetCurrentList(listID string) {
	s.Dispatch(SetCurrentList{ID: listID})
}

// AddProduct materializes a draft into the named list. When the draft
// carries a positive price and price tracking is enabled, a price record is
// appended in a second, independent transition; the two-step orchestration
// is a business rule, not an accident of the reducer.
func (s *Store) AddProduct(listID string, draft ProductDraft) model.Product {
	now := s.now()
	product := model.Product{
		ID:         s.newID(),
		Name:       draft.Name,
		Category:   draft.Category,
		Quantity:   draft.Quantity,
		Unit:       draft.Unit,
		IsChecked:  draft.IsChecked,
		Price:      draft.Price,
		Store:      draft.Store,
		Notes:      draft.Notes,
		Autofilled: draft.Autofilled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.Dispatch(AddProduct{ListID: listID, Product: product, Now: now})

	if draft.Price != nil && draft.Price.IsPositive() && s.Settings().EnablePriceTracking {
		s.Dispatch(AddPriceRecord{Record: model.PriceRecord{
			ID:          s.newID(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       *draft.Price,
			Store:       draft.Store,
			RecordedAt:  now,
		}})
	}
	return product
}

// UpdateProduct replaces a product within a list, restamping its UpdatedAt.
func (s *Store) UpdateProduct(listID string, product model.Product) {
	now := s.now()
	product.UpdatedAt = now
	s.Dispatch(UpdateProduct{ListID: listID, Product: product, Now: now})
}

// DeleteProduct removes a product from a list.
func (s *Store) DeleteProduct(listID, productID string) {
	s.Dispatch(DeleteProduct{ListID: listID, ProductID: productID, Now: s.now()})
}

// ToggleProduct flips a product's checked flag.
func (s *Store) ToggleProduct(listID, productID string) {
	s.Dispatch(ToggleProduct{ListID: listID, ProductID: productID, Now: s.now()})
}

// CompleteList archives a list and records its history snapshot.
func (s *Store) CompleteList(listID string) {
	s.Dispatch(CompleteList{ID: listID, EntryID: s.newID(), Now: s.now()})
}

// UpdateSettings shallow-merges a settings patch.
func (s *Store) UpdateSettings(patch model.SettingsPatch) {
	s.Dispatch(UpdateSettings{Patch: patch})
}

// AddHistoryEntry prepends an entry directly to the history.
func (s *Store) AddHistoryEntry(entry model.HistoryEntry) {
	s.Dispatch(AddHistoryEntry{Entry: entry})
}

// ClearHistory empties the purchase history.
func (s *Store) ClearHistory() {
	s.Dispatch(ClearHistory{})
}

// AddPriceRecord appends directly to the price log.
func (s *Store) AddPriceRecord(record model.PriceRecord) {
	s.Dispatch(AddPriceRecord{Record: record})
}

// CurrentList returns the focused list. The second value is false when no
// list is selected, the selection points nowhere, or the selected list has
// been archived — all of which callers must treat as a valid "no current
// list" condition.
func (s *Store) CurrentList() (model.ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentListID == "" {
		return model.ShoppingList{}, false
	}
	for _, l := range s.state.ShoppingLists {
		if l.ID == s.state.CurrentListID && !l.IsArchived {
			return l, true
		}
	}
	return model.ShoppingList{}, false
}

// ActiveLists returns all non-archived lists.
func (s *Store) ActiveLists() []model.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ShoppingList
	for _, l := range s.state.ShoppingLists {
		if !l.IsArchived {
			out = append(out, l)
		}
	}
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// Snapshot returns the current state. The contained slices are shared;
// callers must treat the snapshot as read-only.
func (s *Store) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// RecentlyUsedProducts returns up to limit items across all lists, most
// recently used first.
func (s *Store) RecentlyUsedProducts(limit int) []model.Product {
	s.mu.Lock()
	var all []model.Product
	for _, l := range s.state.ShoppingLists {
		all = append(all, l.Items...)
	}
	s.mu.Unlock()
	return grouping.RecentlyUsed(all, limit)
}

// ClearAllData wipes every persisted collection. In-memory state is left as
// is; the UI layer prompts the user to restart.
func (s *Store) ClearAllData(ctx context.Context) error {
	return s.adapter.ClearAll(ctx)
}
