// Package pricing computes money totals and the minimal aggregates the app
// derives from history entries and the append-only price log.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/RiciYT/shopping-app-ai/internal/model"
)

// currencySymbols maps ISO codes to display symbols. Unknown codes render as
// the code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CHF": "CHF ",
}

// Format renders an amount with its currency symbol and two decimals.
func Format(amount decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	return symbol + amount.StringFixed(2)
}

// Total sums price×quantity over items. Items without a price contribute
// nothing.
func Total(items []model.Product) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if item.Price == nil {
			continue
		}
		sum = sum.Add(item.Price.Mul(decimal.NewFromFloat(item.Quantity)))
	}
	return sum
}

// HistorySummary aggregates completed shopping trips.
type HistorySummary struct {
	Trips      int
	Items      int
	TotalSpent decimal.Decimal
}

// Summarize folds history entries into overall trip stats.
func Summarize(history []model.HistoryEntry) HistorySummary {
	s := HistorySummary{TotalSpent: decimal.Zero}
	for _, e := range history {
		s.Trips++
		s.Items += e.ItemCount
		s.TotalSpent = s.TotalSpent.Add(e.TotalPrice)
	}
	return s
}

// Trend describes the observed price range of one product.
type Trend struct {
	ProductID string
	Samples   int
	Min       decimal.Decimal
	Max       decimal.Decimal
	Average   decimal.Decimal
	// Latest is the most recently recorded price.
	Latest decimal.Decimal
}

// TrendFor scans the append-only price log for one product. The second
// return value is false when the product has no recorded prices.
func TrendFor(records []model.PriceRecord, productID string) (Trend, bool) {
	t := Trend{ProductID: productID}
	sum := decimal.Zero
	var latest model.PriceRecord
	for _, r := range records {
		if r.ProductID != productID {
			continue
		}
		if t.Samples == 0 {
			t.Min = r.Price
			t.Max = r.Price
			latest = r
		} else {
			if r.Price.LessThan(t.Min) {
				t.Min = r.Price
			}
			if r.Price.GreaterThan(t.Max) {
				t.Max = r.Price
			}
			if r.RecordedAt.After(latest.RecordedAt) {
				latest = r
			}
		}
		sum = sum.Add(r.Price)
		t.Samples++
	}
	if t.Samples == 0 {
		return Trend{}, false
	}
	t.Average = sum.Div(decimal.NewFromInt(int64(t.Samples)))
	t.Latest = latest.Price
	return t, true
}
