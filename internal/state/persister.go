package state

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/RiciYT/shopping-app-ai/internal/model"
	"github.com/RiciYT/shopping-app-ai/internal/storage"
)

type collection int

const (
	colLists collection = iota
	colSettings
	colHistory
	colPriceRecords
)

// persister writes collection snapshots to storage in the background.
// Dispatch hands over the latest snapshot of each dirty collection;
// intermediate snapshots of the same collection are coalesced so a burst of
// edits results in one write. Saves are best-effort: failures are logged,
// never surfaced to the dispatcher.
type persister struct {
	adapter storage.Adapter
	log     zerolog.Logger

	mu      sync.Mutex
	pending map[collection]any

	// writeMu serializes drains so that flush callers observe every save
	// enqueued before they were called.
	writeMu sync.Mutex

	notify chan struct{}
	done   chan struct{}
	cancel context.CancelFunc
}

func newPersister(adapter storage.Adapter, log zerolog.Logger) *persister {
	ctx, cancel := context.WithCancel(context.Background())
	p := &persister{
		adapter: adapter,
		log:     log,
		pending: make(map[collection]any),
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go p.run(ctx)
	return p
}

// enqueue records the latest snapshot for a collection and wakes the writer.
func (p *persister) enqueue(col collection, snapshot any) {
	p.mu.Lock()
	p.pending[col] = snapshot
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

func (p *persister) run(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.notify:
			p.drain(ctx)
		}
	}
}

// drain writes out every pending snapshot.
func (p *persister) drain(ctx context.Context) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[collection]any)
	p.mu.Unlock()

	for col, snapshot := range batch {
		var err error
		switch col {
		case colLists:
			err = p.adapter.SaveLists(ctx, snapshot.([]model.ShoppingList))
		case colSettings:
			err = p.adapter.SaveSettings(ctx, snapshot.(model.Settings))
		case colHistory:
			err = p.adapter.SaveHistory(ctx, snapshot.([]model.HistoryEntry))
		case colPriceRecords:
			err = p.adapter.SavePriceRecords(ctx, snapshot.([]model.PriceRecord))
		}
		if err != nil {
			p.log.Error().Err(err).Int("collection", int(col)).Msg("background save failed")
		}
	}
}

// flush synchronously writes whatever is still pending.
func (p *persister) flush(ctx context.Context) {
	p.drain(ctx)
}

// close stops the writer after a final flush.
func (p *persister) close() {
	p.cancel()
	<-p.done
	p.drain(context.Background())
}
