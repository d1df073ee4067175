package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RiciYT/shopping-app-ai/internal/config"
	"github.com/RiciYT/shopping-app-ai/internal/grouping"
	"github.com/RiciYT/shopping-app-ai/internal/infra"
	"github.com/RiciYT/shopping-app-ai/internal/pricing"
	"github.com/RiciYT/shopping-app-ai/internal/state"
	"github.com/RiciYT/shopping-app-ai/internal/storage"
)

// Composition root: the state store is built here, loaded from local
// storage, and handed to the presentation layer. Until the UI lands, the
// binary prints the current list in store-aisle order plus the trip summary.
func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
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
		log.Warn().Err(err).Msg("continuing with default state")
	}

	snapshot := store.Snapshot()
	log.Info().
		Int("lists", len(snapshot.ShoppingLists)).
		Int("history", len(snapshot.History)).
		Int("priceRecords", len(snapshot.PriceRecords)).
		Msg("state loaded")

	currency := snapshot.Settings.Currency
	layout := grouping.StoreLayout(cfg.StoreLayout)

	list, ok := store.CurrentList()
	if !ok {
		fmt.Println("No active shopping list.")
	} else {
		fmt.Printf("%s (%d items, %s)\n", list.Name, len(list.Items),
			pricing.Format(pricing.Total(list.Items), currency))
		for _, group := range grouping.ByCategoryWithStoreOrder(list.Items, layout) {
			fmt.Printf("  %s\n", group.Category)
			for _, item := range group.Items {
				mark := " "
				if item.IsChecked {
					mark = "x"
				}
				line := fmt.Sprintf("    [%s] %g %s %s", mark, item.Quantity, item.Unit, item.Name)
				if item.Price != nil {
					line += " @ " + pricing.Format(*item.Price, currency)
				}
				fmt.Println(line)
			}
		}
	}

	summary := pricing.Summarize(snapshot.History)
	fmt.Printf("History: %d trips, %d items, %s spent\n",
		summary.Trips, summary.Items, pricing.Format(summary.TotalSpent, currency))

	store.Flush(ctx)
}
