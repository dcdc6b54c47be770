package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Source returns the full content of the ledger.
type Source interface {
	Pull(ctx context.Context) ([]Entry, error)
}

// Importer applies ledger rows to the local order book and reports how
// many orders changed.
type Importer interface {
	ImportEntries(ctx context.Context, entries []Entry) (int, error)
}

// Puller copies the ledger into the local order book on a fixed interval.
// The ledger is authoritative for every row it holds.
type Puller struct {
	source   Source
	sink     Importer
	interval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPuller creates a puller. Call Start to begin pulling.
func NewPuller(source Source, sink Importer, interval time.Duration) *Puller {
	return &Puller{
		source:   source,
		sink:     sink,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start pulls every interval until Stop.
func (p *Puller) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), p.interval)
				if _, err := p.PullOnce(ctx); err != nil {
					log.Debug().Err(err).Msg("Ledger pull unavailable")
				}
				cancel()
			case <-p.stopCh:
				return
			}
		}
	}()
}

// PullOnce fetches the ledger and imports it.
func (p *Puller) PullOnce(ctx context.Context) (int, error) {
	entries, err := p.source.Pull(ctx)
	if err != nil {
		return 0, err
	}
	changed, err := p.sink.ImportEntries(ctx, entries)
	if changed > 0 {
		log.Info().Int("rows", len(entries)).Int("changed", changed).Msg("Orders updated from ledger")
	}
	return changed, err
}

// Stop ends pulling and waits for a pull in progress.
func (p *Puller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.wg.Wait()
	})
}
