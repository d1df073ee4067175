package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RiciYT/shopping-app-ai/internal/model"
)

// Collection keys inside the documents table.
const (
	keyShoppingLists = "shopping_lists"
	keySettings      = "settings"
	keyHistory       = "history"
	keyPriceRecords  = "price_records"
)

// document is one persisted collection, serialized as JSON. time.Time fields
// round-trip as RFC 3339 strings via encoding/json.
type document struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

type sqlStore struct{ db *gorm.DB }

// NewSQLStore returns an Adapter backed by the given GORM connection and
// migrates the documents table.
func NewSQLStore(db *gorm.DB) (Adapter, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, err
	}
	return &sqlStore{db: db}, nil
}

// loadDoc fetches one collection document. ok=false means the key has never
// been written.
func (s *sqlStore) loadDoc(ctx context.Context, key string) (string, bool, error) {
	var doc document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

func (s *sqlStore) saveDoc(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	doc := document{Key: key, Value: string(data), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&doc).Error
}

// loadInto unmarshals the stored document for key into out. Missing or
// malformed documents leave out untouched and report ok=false; only real
// storage errors propagate.
func (s *sqlStore) loadInto(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.loadDoc(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding malformed stored document")
		return false, nil
	}
	return true, nil
}

func (s *sqlStore) LoadLists(ctx context.Context) ([]model.ShoppingList, error) {
	var lists []model.ShoppingList
	if _, err := s.loadInto(ctx, keyShoppingLists, &lists); err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []model.ShoppingList{}
	}
	return lists, nil
}

func (s *sqlStore) SaveLists(ctx context.Context, lists []model.ShoppingList) error {
	return s.saveDoc(ctx, keyShoppingLists, lists)
}

func (s *sqlStore) LoadSettings(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()
	if _, err := s.loadInto(ctx, keySettings, &settings); err != nil {
		return model.DefaultSettings(), err
	}
	return settings, nil
}

func (s *sqlStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.saveDoc(ctx, keySettings, settings)
}

func (s *sqlStore) LoadHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	var history []model.HistoryEntry
	if _, err := s.loadInto(ctx, keyHistory, &history); err != nil {
		return nil, err
	}
	if history == nil {
		history = []model.HistoryEntry{}
	}
	return history, nil
}

func (s *sqlStore) SaveHistory(ctx context.Context, history []model.HistoryEntry) error {
	return s.saveDoc(ctx, keyHistory, history)
}

func (s *sqlStore) LoadPriceRecords(ctx context.Context) ([]model.PriceRecord, error) {
	var records []model.PriceRecord
	if _, err := s.loadInto(ctx, keyPriceRecords, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.PriceRecord{}
	}
	return records, nil
}

func (s *sqlStore) SavePriceRecords(ctx context.Context, records []model.PriceRecord) error {
	return s.saveDoc(ctx, keyPriceRecords, records)
}

func (s *sqlStore) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("key IN ?", []string{keyShoppingLists, keySettings, keyHistory, keyPriceRecords}).
		Delete(&document{}).Error
}
