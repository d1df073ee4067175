// cmd/seedlist/main.go — seeds a demo shopping list into the local store.
// Usage: go run ./cmd/seedlist
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/RiciYT/shopping-app-ai/internal/config"
	"github.com/RiciYT/shopping-app-ai/internal/infra"
	"github.com/RiciYT/shopping-app-ai/internal/parse"
	"github.com/RiciYT/shopping-app-ai/internal/state"
	"github.com/RiciYT/shopping-app-ai/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local database")
	}
	adapter, err := storage.NewSQLStore(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare local storage")
	}

	store := state.New(adapter, log.Logger)
	defer store.Close()

	ctx := context.Background()
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load existing state")
	}

	defaultUnit := store.Settings().DefaultUnit
	list := store.AddList("Groceries (demo)")

	entries := []struct {
		text  string
		price string
	}{
		{"2 apples", "0.80"},
		{"milk 1l", "1.55"},
		{"bread", "2.90"},
		{"tomatoes 500g", ""},
		{"6 eggs", "3.20"},
		{"toilet paper", ""},
	}
	for _, e := range entries {
		parsed := parse.ItemInput(e.text, defaultUnit)
		draft := state.ProductDraft{
			Name:       parsed.Name,
			Category:   parsed.Category,
			Quantity:   parsed.Quantity,
			Unit:       parsed.Unit,
			Autofilled: parsed.Autofilled,
		}
		if e.price != "" {
			p := decimal.RequireFromString(e.price)
			draft.Price = &p
		}
		store.AddProduct(list.ID, draft)
	}

	store.Flush(ctx)
	fmt.Printf("Seeded list %q with %d items into %s\n", list.Name, len(entries), cfg.DataDir)
}
