// Package parse turns free-text item entries like "3 bananas" or "milk 1l"
// into structured products. Parsing never fails: the worst case is a
// low-confidence guess with Autofilled=false.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/RiciYT/shopping-app-ai/internal/catalog"
)

// ParsedItem is the structured result of parsing one text entry.
type ParsedItem struct {
	Name     string
	Quantity float64
	Unit     string
	Category catalog.Category
	// Autofilled is true when quantity/unit were inferred from the text.
	Autofilled bool
}

type unitPattern struct {
	re   *regexp.Regexp
	unit string
}

// unitPatterns is scanned in order; the first pattern matching anywhere in
// the text wins. Weight/volume units accept decimals, count units do not.
var unitPatterns = []unitPattern{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*kg\b`), "kg"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*g\b`), "g"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*lb\b`), "lb"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*oz\b`), "oz"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*l\b`), "L"},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*ml\b`), "ml"},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:pcs?|pieces?|x)\b`), "pcs"},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:packs?|pk)\b`), "pack"},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:bottles?)\b`), "bottle"},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:cans?)\b`), "can"},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:box(?:es)?)\b`), "box"},
	{regexp.MustCompile(`(?i)(\d+)\s*(?:bags?)\b`), "bag"},
}

var (
	leadingNumberRe  = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	trailingNumberRe = regexp.MustCompile(`^(.+?)\s+(\d+)$`)
)

// ItemInput parses a free-text entry into name, quantity, unit and a
// suggested category. Resolution order, first match wins:
//
//  1. a quantity+unit token anywhere in the text ("milk 1l", "tomatoes 500g")
//  2. a leading integer ("3 bananas")
//  3. a trailing integer ("bananas 3")
//
// The matched token is removed from the text and the remainder, first rune
// capitalized, becomes the name. Unit falls back to defaultUnit and quantity
// to 1. A captured number that parses to zero is guarded back to 1 so the
// quantity is always positive.
func ItemInput(input string, defaultUnit string) ParsedItem {
	text := strings.TrimSpace(input)
	quantity := 1.0
	unit := defaultUnit
	autofilled := false

	for _, up := range unitPatterns {
		loc := up.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		q, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err == nil && q > 0 {
			quantity = q
		}
		unit = up.unit
		text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
		autofilled = true
		break
	}

	if !autofilled {
		if m := leadingNumberRe.FindStringSubmatch(text); m != nil {
			if q, err := strconv.ParseFloat(m[1], 64); err == nil && q > 0 {
				quantity = q
			}
			text = m[2]
			autofilled = true
		}
	}
	if !autofilled {
		if m := trailingNumberRe.FindStringSubmatch(text); m != nil {
			if q, err := strconv.ParseFloat(m[2], 64); err == nil && q > 0 {
				quantity = q
			}
			text = m[1]
			autofilled = true
		}
	}

	name := capitalize(strings.TrimSpace(text))

	category, ok := catalog.SuggestCategory(name)
	if !ok {
		category = catalog.Other
	}

	return ParsedItem{
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		Category:   category,
		Autofilled: autofilled,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
