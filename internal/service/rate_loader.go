package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// Rate configuration sources reported by LoadRates.
const (
	RateSourceStore   = "store"
	RateSourceFile    = "file"
	RateSourceDefault = "default"
)

// RateLoader acquires the rate configuration the service starts with.
type RateLoader struct {
	// File is a JSON rate document. Optional.
	File string
	// Repo holds the versioned configurations. Optional.
	Repo repository.RateConfigRepositoryInterface
	// Timeout bounds the retries against Repo.
	Timeout time.Duration

	readFile func(string) ([]byte, error)
}

// LoadRates resolves the starting configuration: the active stored version,
// then the rate file, then the degraded default document. A file loaded while
// the store is empty is stored as its first version. LoadRates never fails;
// every fallback is logged.
func (l RateLoader) LoadRates(ctx context.Context) (pricing.Configuration, string) {
	storeEmpty := false
	if l.Repo != nil {
		doc, err := l.fetchActive(ctx)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("Failed to fetch active rate configuration")
		case doc == nil:
			storeEmpty = true
		default:
			metrics.SetRateConfigVersion(doc.Version)
			log.Info().Int("version", doc.Version).Msg("Loaded rate configuration from store")
			return doc.Config, RateSourceStore
		}
	}

	if l.File != "" {
		cfg, repairs, err := l.loadFile()
		if err == nil {
			for _, r := range repairs {
				log.Warn().Str("file", l.File).Str("repair", r).Msg("Repaired rate configuration")
			}
			if storeEmpty {
				l.seed(ctx, cfg, repairs)
			}
			log.Info().Str("file", l.File).Msg("Loaded rate configuration from file")
			return cfg, RateSourceFile
		}
		log.Warn().Err(err).Str("file", l.File).Msg("Failed to load rate configuration file")
	}

	log.Warn().Msg("No rate configuration available, using default configuration")
	metrics.SetRateConfigVersion(0)
	return pricing.DefaultConfiguration(), RateSourceDefault
}

func (l RateLoader) fetchActive(ctx context.Context) (*repository.RateConfigDocument, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = l.Timeout
	if b.MaxElapsedTime <= 0 {
		b.MaxElapsedTime = 5 * time.Second
	}

	return backoff.RetryWithData(func() (*repository.RateConfigDocument, error) {
		return l.Repo.GetActive(ctx)
	}, backoff.WithContext(b, ctx))
}

func (l RateLoader) loadFile() (pricing.Configuration, []string, error) {
	read := l.readFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(l.File)
	if err != nil {
		return pricing.Configuration{}, nil, fmt.Errorf("failed to read rate file: %w", err)
	}
	return pricing.ParseConfiguration(data)
}

func (l RateLoader) seed(ctx context.Context, cfg pricing.Configuration, repairs []string) {
	doc, err := l.Repo.Create(ctx, cfg, repairs, "rate-file")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to store rate configuration from file")
		return
	}
	metrics.SetRateConfigVersion(doc.Version)
}
