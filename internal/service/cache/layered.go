package cache

import (
	"context"

	"github.com/guttosm/print-quote-service/internal/pricing"
)

// Layered checks a fast local cache before a shared one and fills the
// local cache on shared hits.
type Layered struct {
	local  Cache
	shared Cache
}

// NewLayered combines a local and a shared cache.
func NewLayered(local, shared Cache) *Layered {
	return &Layered{local: local, shared: shared}
}

func (l *Layered) Get(ctx context.Context, key string) (pricing.Quote, bool) {
	if q, ok := l.local.Get(ctx, key); ok {
		return q, true
	}
	q, ok := l.shared.Get(ctx, key)
	if ok {
		l.local.Set(ctx, key, q)
	}
	return q, ok
}

func (l *Layered) Set(ctx context.Context, key string, value pricing.Quote) {
	l.local.Set(ctx, key, value)
	l.shared.Set(ctx, key, value)
}

func (l *Layered) Invalidate(ctx context.Context, key string) {
	l.local.Invalidate(ctx, key)
	l.shared.Invalidate(ctx, key)
}

func (l *Layered) Clear(ctx context.Context) {
	l.local.Clear(ctx)
	l.shared.Clear(ctx)
}

func (l *Layered) Stop() {
	l.local.Stop()
	l.shared.Stop()
}
