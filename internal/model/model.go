// Package model defines the persisted domain types. All types are plain
// values: lists own their items exclusively and nothing is shared by
// reference across lists.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RiciYT/shopping-app-ai/internal/catalog"
)

// NewID returns an opaque unique identifier for any domain record.
func NewID() string {
	return uuid.NewString()
}

// Product is a single purchasable entry within one shopping list.
type Product struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	// Quantity is at least 1 for counted items; fractional values occur for
	// weight/volume units ("0.5 kg").
	Quantity   float64          `json:"quantity"`
	Unit       string           `json:"unit"`
	IsChecked  bool             `json:"isChecked"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Store      string           `json:"store,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	LastUsedAt *time.Time       `json:"lastUsedAt,omitempty"`
	TimesUsed  int              `json:"timesUsed,omitempty"`
	// Autofilled marks quantity/unit/category values inferred by the text
	// parser rather than chosen explicitly by the user.
	Autofilled bool `json:"autofilled,omitempty"`
}

// ShoppingList is a named, ordered collection of products. Once archived via
// completion it no longer counts as active and is never mutated again.
type ShoppingList struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Items       []Product  `json:"items"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	IsArchived  bool       `json:"isArchived"`
}

// HistoryEntry is an immutable snapshot taken exactly once when a list is
// completed.
type HistoryEntry struct {
	ID          string          `json:"id"`
	ListID      string          `json:"listId"`
	ListName    string          `json:"listName"`
	ItemCount   int             `json:"itemCount"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CompletedAt time.Time       `json:"completedAt"`
}

// PriceRecord is one observation in the append-only price log. Records are
// never updated or deleted.
type PriceRecord struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Store       string          `json:"store,omitempty"`
	RecordedAt  time.Time       `json:"recordedAt"`
}

// Settings is the single global configuration object. Updates shallow-merge
// field by field, they never reset unrelated fields.
type Settings struct {
	DarkMode            bool   `json:"darkMode"`
	Currency            string `json:"currency"`
	DefaultUnit         string `json:"defaultUnit"`
	EnableNotifications bool   `json:"enableNotifications"`
	EnablePriceTracking bool   `json:"enablePriceTracking"`
	EnableBudgetAlerts  bool   `json:"enableBudgetAlerts"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:            false,
		Currency:            "USD",
		DefaultUnit:         "pcs",
		EnableNotifications: false,
		EnablePriceTracking: true,
		EnableBudgetAlerts:  false,
	}
}

// SettingsPatch carries a partial settings update; nil fields are left
// untouched by the merge.
type SettingsPatch struct {
	DarkMode            *bool   `json:"darkMode,omitempty"`
	Currency            *string `json:"currency,omitempty"`
	DefaultUnit         *string `json:"defaultUnit,omitempty"`
	EnableNotifications *bool   `json:"enableNotifications,omitempty"`
	EnablePriceTracking *bool   `json:"enablePriceTracking,omitempty"`
	EnableBudgetAlerts  *bool   `json:"enableBudgetAlerts,omitempty"`
}

// Apply merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.DefaultUnit != nil {
		s.DefaultUnit = *p.DefaultUnit
	}
	if p.EnableNotifications != nil {
		s.EnableNotifications = *p.EnableNotifications
	}
	if p.EnablePriceTracking != nil {
		s.EnablePriceTracking = *p.EnablePriceTracking
	}
	if p.EnableBudgetAlerts != nil {
		s.EnableBudgetAlerts = *p.EnableBudgetAlerts
	}
	return s
}
