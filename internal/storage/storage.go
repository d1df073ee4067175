// Package storage persists the app's collections to device-local storage.
// Each collection is stored whole, as one JSON document keyed by collection
// name. Loads never fail from the caller's perspective: missing or corrupt
// data degrades to an empty collection (or default settings) and a log line.
package storage

import (
	"context"

	"github.com/RiciYT/shopping-app-ai/internal/model"
)

// Adapter is the persistence contract consumed by the state store.
type Adapter interface {
	LoadLists(ctx context.Context) ([]model.ShoppingList, error)
	SaveLists(ctx context.Context, lists []model.ShoppingList) error
	LoadSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error
	LoadHistory(ctx context.Context) ([]model.HistoryEntry, error)
	SaveHistory(ctx context.Context, history []model.HistoryEntry) error
	LoadPriceRecords(ctx context.Context) ([]model.PriceRecord, error)
	SavePriceRecords(ctx context.Context, records []model.PriceRecord) error

	// ClearAll wipes every persisted collection. In-memory state is not
	// touched; the caller is expected to restart the app afterwards.
	ClearAll(ctx context.Context) error
}
