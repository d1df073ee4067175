package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCategoryExactMatch(t *testing.T) {
	cat, ok := SuggestCategory("milk")
	assert.True(t, ok)
	assert.Equal(t, DairyEggs, cat)

	cat, ok = SuggestCategory("MILK")
	assert.True(t, ok)
	assert.Equal(t, DairyEggs, cat)
}

func TestSuggestCategoryContainment(t *testing.T) {
	cat, ok := SuggestCategory("frozen pizza family size")
	assert.True(t, ok)
	assert.Equal(t, Frozen, cat)

	cat, ok = SuggestCategory("organic whole milk")
	assert.True(t, ok)
	assert.Equal(t, DairyEggs, cat)
}

func TestSuggestCategoryNoMatch(t *testing.T) {
	_, ok := SuggestCategory("flux capacitor")
	assert.False(t, ok)
}

func TestSuggestCategorySubstringFalsePositive(t *testing.T) {
	// Known heuristic limitation: short curated names match inside
	// unrelated words ("Tea" inside "steak").
	cat, ok := SuggestCategory("steak")
	assert.True(t, ok)
	assert.Equal(t, Beverages, cat)
}

func TestSuggestCategoryFirstMatchWins(t *testing.T) {
	// "canned tomatoes" contains both "Tomatoes" (Fruits & Vegetables) and
	// "Canned Tomatoes" (Pantry); table order decides.
	cat, ok := SuggestCategory("canned tomatoes")
	assert.True(t, ok)
	assert.Equal(t, FruitsVegetables, cat)
}

func TestProductSuggestions(t *testing.T) {
	got := ProductSuggestions("to", 3)
	assert.Len(t, got, 3)
	for _, e := range got {
		assert.Contains(t, []string{"Tomatoes", "Potatoes", "Canned Tomatoes", "Tortillas", "Toilet Paper", "Toothpaste"}, e.Name)
	}

	assert.Empty(t, ProductSuggestions("  ", 5))
	assert.Empty(t, ProductSuggestions("zzz", 5))
}

func TestCategoryMetadata(t *testing.T) {
	assert.Equal(t, "#4CAF50", Color(FruitsVegetables))
	assert.Equal(t, "leaf-outline", Icon(FruitsVegetables))

	// Unknown categories fall back to the Other visuals.
	assert.Equal(t, Color(Other), Color("No Such Category"))
	assert.Equal(t, Icon(Other), Icon("No Such Category"))
}

func TestMasterOrder(t *testing.T) {
	all := All()
	assert.Len(t, all, 11)
	assert.Equal(t, FruitsVegetables, all[0])
	assert.Equal(t, Other, all[len(all)-1])
}
