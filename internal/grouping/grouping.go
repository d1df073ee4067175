// Package grouping partitions list items by category and orders the groups
// to match a store's physical aisle layout.
package grouping

import (
	"sort"
	"time"

	"github.com/RiciYT/shopping-app-ai/internal/catalog"
	"github.com/RiciYT/shopping-app-ai/internal/model"
)

// StoreLayout names a supported per-retailer category ordering.
type StoreLayout string

const (
	Lidl   StoreLayout = "Lidl"
	Coop   StoreLayout = "Coop"
	Migros StoreLayout = "Migros"
	// Custom uses the master category order from the catalog.
	Custom StoreLayout = "Custom"
)

// Layouts lists all supported store layouts.
var Layouts = []StoreLayout{Lidl, Coop, Migros, Custom}

// storeCategoryOrder approximates each retailer's aisle sequence.
var storeCategoryOrder = map[StoreLayout][]catalog.Category{
	Lidl: {
		catalog.FruitsVegetables,
		catalog.Bakery,
		catalog.DairyEggs,
		catalog.MeatSeafood,
		catalog.Frozen,
		catalog.Pantry,
		catalog.Beverages,
		catalog.Snacks,
		catalog.Household,
		catalog.PersonalCare,
		catalog.Other,
	},
	Coop: {
		catalog.FruitsVegetables,
		catalog.DairyEggs,
		catalog.Bakery,
		catalog.MeatSeafood,
		catalog.Pantry,
		catalog.Beverages,
		catalog.Frozen,
		catalog.Snacks,
		catalog.Household,
		catalog.PersonalCare,
		catalog.Other,
	},
	Migros: {
		catalog.Bakery,
		catalog.FruitsVegetables,
		catalog.DairyEggs,
		catalog.MeatSeafood,
		catalog.Pantry,
		catalog.Frozen,
		catalog.Beverages,
		catalog.Snacks,
		catalog.Household,
		catalog.PersonalCare,
		catalog.Other,
	},
	Custom: catalog.All(),
}

// CategoryOrder returns the aisle order for a layout, defaulting to the
// master category order for unknown layouts.
func CategoryOrder(layout StoreLayout) []catalog.Category {
	if order, ok := storeCategoryOrder[layout]; ok {
		return order
	}
	return catalog.All()
}

// ByCategory groups items by category, preserving the input order of items
// within each group. Items with an empty category coalesce into Other.
func ByCategory(items []model.Product) map[catalog.Category][]model.Product {
	groups := make(map[catalog.Category][]model.Product)
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = catalog.Other
		}
		groups[cat] = append(groups[cat], item)
	}
	return groups
}

// CategoryGroup is one ordered (category, items) pair.
type CategoryGroup struct {
	Category catalog.Category
	Items    []model.Product
}

// ByCategoryWithStoreOrder groups items and emits the groups in the layout's
// aisle order. Every category present in the input appears exactly once;
// categories unknown to the layout trail the ordered ones, sorted
// alphabetically so the output is deterministic.
func ByCategoryWithStoreOrder(items []model.Product, layout StoreLayout) []CategoryGroup {
	grouped := ByCategory(items)
	order := CategoryOrder(layout)

	sorted := make([]CategoryGroup, 0, len(grouped))
	seen := make(map[catalog.Category]bool, len(order))
	for _, cat := range order {
		seen[cat] = true
		if g, ok := grouped[cat]; ok {
			sorted = append(sorted, CategoryGroup{Category: cat, Items: g})
		}
	}

	var leftovers []catalog.Category
	for cat := range grouped {
		if !seen[cat] {
			leftovers = append(leftovers, cat)
		}
	}
	sort.Slice(leftovers, func(i, j int) bool { return leftovers[i] < leftovers[j] })
	for _, cat := range leftovers {
		sorted = append(sorted, CategoryGroup{Category: cat, Items: grouped[cat]})
	}

	return sorted
}

// RecentlyUsed returns up to max items sorted most-recently-used first.
// Items without a LastUsedAt timestamp fall back to UpdatedAt. The sort is
// stable so equal timestamps keep their input order.
func RecentlyUsed(items []model.Product, max int) []model.Product {
	sorted := make([]model.Product, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return usedAt(sorted[i]).After(usedAt(sorted[j]))
	})
	if max > 0 && len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}

func usedAt(p model.Product) time.Time {
	if p.LastUsedAt != nil {
		return *p.LastUsedAt
	}
	return p.UpdatedAt
}
