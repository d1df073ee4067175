package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiciYT/shopping-app-ai/internal/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTotal(t *testing.T) {
	items := []model.Product{
		{Name: "Milk", Quantity: 2, Price: dec("1.50")},
		{Name: "Bread", Quantity: 1},
		{Name: "Cheese", Quantity: 0.5, Price: dec("10.00")},
	}
	assert.True(t, Total(items).Equal(decimal.RequireFromString("8.00")),
		"2×1.50 + 0 + 0.5×10.00")

	assert.True(t, Total(nil).IsZero())
}

func TestFormat(t *testing.T) {
	amount := decimal.RequireFromString("12.4")
	assert.Equal(t, "$12.40", Format(amount, "USD"))
	assert.Equal(t, "€12.40", Format(amount, "EUR"))
	assert.Equal(t, "CHF 12.40", Format(amount, "CHF"))
	assert.Equal(t, "SEK12.40", Format(amount, "SEK"), "unknown codes render as-is")
}

func TestSummarize(t *testing.T) {
	history := []model.HistoryEntry{
		{ItemCount: 3, TotalPrice: decimal.RequireFromString("10.00")},
		{ItemCount: 5, TotalPrice: decimal.RequireFromString("2.50")},
		{ItemCount: 1, TotalPrice: decimal.Zero},
	}

	s := Summarize(history)
	assert.Equal(t, 3, s.Trips)
	assert.Equal(t, 9, s.Items)
	assert.True(t, s.TotalSpent.Equal(decimal.RequireFromString("12.50")))

	empty := Summarize(nil)
	assert.Zero(t, empty.Trips)
	assert.True(t, empty.TotalSpent.IsZero())
}

func TestTrendFor(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []model.PriceRecord{
		{ProductID: "p1", Price: decimal.RequireFromString("2.00"), RecordedAt: base},
		{ProductID: "p2", Price: decimal.RequireFromString("9.99"), RecordedAt: base},
		{ProductID: "p1", Price: decimal.RequireFromString("1.50"), RecordedAt: base.Add(24 * time.Hour)},
		{ProductID: "p1", Price: decimal.RequireFromString("2.50"), RecordedAt: base.Add(48 * time.Hour)},
	}

	trend, ok := TrendFor(records, "p1")
	require.True(t, ok)
	assert.Equal(t, 3, trend.Samples)
	assert.True(t, trend.Min.Equal(decimal.RequireFromString("1.50")))
	assert.True(t, trend.Max.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, trend.Average.Equal(decimal.RequireFromString("2.00")))
	assert.True(t, trend.Latest.Equal(decimal.RequireFromString("2.50")))

	_, ok = TrendFor(records, "ghost")
	assert.False(t, ok)
}
