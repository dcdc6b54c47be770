// Package cache provides quote caches keyed by a canonical request key.
package cache

import (
	"context"

	"github.com/guttosm/print-quote-service/internal/pricing"
)

// Cache defines the interface for quote cache operations.
type Cache interface {
	Get(ctx context.Context, key string) (pricing.Quote, bool)
	Set(ctx context.Context, key string, value pricing.Quote)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
