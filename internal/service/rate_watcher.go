package service

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// RateTarget is the calculator a RateWatcher keeps in step with the store.
type RateTarget interface {
	Reloader
	Fingerprint() string
}

// RateWatcher polls the active stored rates and reloads the target when
// another instance activated different ones.
type RateWatcher struct {
	repo     repository.RateConfigRepositoryInterface
	target   RateTarget
	interval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRateWatcher creates a watcher polling every interval. Call Start to
// begin polling.
func NewRateWatcher(repo repository.RateConfigRepositoryInterface, target RateTarget, interval time.Duration) *RateWatcher {
	return &RateWatcher{
		repo:     repo,
		target:   target,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the polling loop until Stop.
func (w *RateWatcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

func (w *RateWatcher) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			if _, err := w.Check(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to check the active rates")
			}
			cancel()
		case <-w.stopCh:
			return
		}
	}
}

// Check reloads the target when the active stored version prices
// differently from it. It reports whether a reload happened.
func (w *RateWatcher) Check(ctx context.Context) (bool, error) {
	doc, err := w.repo.GetActive(ctx)
	if err != nil || doc == nil {
		return false, err
	}
	if pricing.Fingerprint(doc.Config) == w.target.Fingerprint() {
		return false, nil
	}

	w.target.Reload(ctx, doc.Config)
	metrics.SetRateConfigVersion(doc.Version)
	log.Info().Int("version", doc.Version).Msg("Active rates changed, reloaded")
	return true, nil
}

// Stop ends polling and waits for a running check.
func (w *RateWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
	})
}
