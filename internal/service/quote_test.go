package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flyerRates(recto float64) pricing.Configuration {
	cfg := pricing.DefaultConfiguration()
	cfg.Tariffs.Flyer = map[pricing.Side][]pricing.RateTier{
		pricing.SideRecto:      {{Qty: 100, Price: recto}, {Qty: 1000, Price: recto * 2}},
		pricing.SideRectoVerso: {{Qty: 100, Price: recto * 1.5}, {Qty: 1000, Price: recto * 3}},
	}
	return cfg
}

// countingCalculator prices every job at a flat base and counts calls.
func countingCalculator(base float64, calls *int64) pricing.Calculator {
	return pricing.CalculatorFunc(func(*pricing.Configuration, pricing.Options, int) (pricing.PricedJob, error) {
		atomic.AddInt64(calls, 1)
		return pricing.PricedJob{Base: base}, nil
	})
}

// TestNewQuoteService tests the constructor and options.
func TestNewQuoteService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *QuoteService)
	}{
		{
			name: "no cache by default",
			validate: func(t *testing.T, svc *QuoteService) {
				assert.Nil(t, svc.cache)
				assert.NotNil(t, svc.engine.Load())
			},
		},
		{
			name:    "enables cache with option",
			options: []Option{WithCache(cache.NewShardedCache(10, time.Minute, 2))},
			validate: func(t *testing.T, svc *QuoteService) {
				assert.NotNil(t, svc.cache)
			},
		},
		{
			name:    "keeps engine options",
			options: []Option{WithEngineOptions(pricing.WithCalculator("mug", countingCalculator(10, new(int64))))},
			validate: func(t *testing.T, svc *QuoteService) {
				assert.Len(t, svc.engineOpts, 1)
				assert.True(t, svc.engine.Load().Supports("mug"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQuoteService(flyerRates(40), tt.options...)
			if c, ok := svc.cache.(*cache.ShardedCache); ok {
				defer c.Stop()
			}
			tt.validate(t, svc)
		})
	}
}

// TestQuoteService_Calculate tests pricing and failure propagation.
func TestQuoteService_Calculate(t *testing.T) {
	svc := NewQuoteService(flyerRates(40))
	ctx := context.Background()

	tests := []struct {
		name    string
		req     QuoteRequest
		total   float64
		wantErr error
	}{
		{
			name:  "flyer at first tier",
			req:   QuoteRequest{Product: pricing.ProductFlyer, Quantity: 100, Options: pricing.Options{Side: pricing.SideRecto, Paper: &pricing.PaperOffset80}},
			total: 40,
		},
		{
			name:  "quantity below table takes first tier",
			req:   QuoteRequest{Product: pricing.ProductFlyer, Quantity: 10, Options: pricing.Options{Paper: &pricing.PaperOffset80}},
			total: 40,
		},
		{
			name:    "zero quantity",
			req:     QuoteRequest{Product: pricing.ProductFlyer, Quantity: 0},
			wantErr: pricing.ErrInvalidQuantity,
		},
		{
			name:    "unknown product",
			req:     QuoteRequest{Product: "mug", Quantity: 10},
			wantErr: pricing.ErrUnknownProduct,
		},
		{
			name:  "empty table raised to minimum price",
			req:   QuoteRequest{Product: pricing.ProductLeaflet, Quantity: 10, Options: pricing.Options{Paper: &pricing.PaperOffset80}},
			total: pricing.DefaultFixedCosts.MinimumPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := svc.Calculate(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, q)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.total, q.Total, 0.001)
		})
	}
}

// TestQuoteService_CacheHits tests that repeated requests skip the engine.
func TestQuoteService_CacheHits(t *testing.T) {
	var calls int64
	c := cache.NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	svc := NewQuoteService(
		flyerRates(40),
		WithCache(c),
		WithEngineOptions(pricing.WithCalculator(pricing.ProductFlyer, countingCalculator(100, &calls))),
	)
	ctx := context.Background()
	req := QuoteRequest{Product: pricing.ProductFlyer, Quantity: 500}

	first, err := svc.Calculate(ctx, req)
	require.NoError(t, err)
	second, err := svc.Calculate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	req.Quantity = 501
	_, err = svc.Calculate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

// TestQuoteService_FailuresNotCached tests that a failed request is retried.
func TestQuoteService_FailuresNotCached(t *testing.T) {
	c := cache.NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	svc := NewQuoteService(flyerRates(40), WithCache(c))
	ctx := context.Background()
	req := QuoteRequest{Product: pricing.ProductFlyer, Quantity: -1}

	_, err := svc.Calculate(ctx, req)
	require.Error(t, err)
	assert.Equal(t, 0, c.Metrics().Size)
}

// TestQuoteService_Reload tests that reloading swaps rates and clears the cache.
func TestQuoteService_Reload(t *testing.T) {
	c := cache.NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	svc := NewQuoteService(flyerRates(40), WithCache(c))
	ctx := context.Background()
	req := QuoteRequest{
		Product:  pricing.ProductFlyer,
		Quantity: 100,
		Options:  pricing.Options{Side: pricing.SideRecto, Paper: &pricing.PaperOffset80},
	}

	before, err := svc.Calculate(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 40, before.Total, 0.001)

	svc.Reload(ctx, flyerRates(80))

	after, err := svc.Calculate(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 80, after.Total, 0.001)
	assert.Equal(t, 80.0, svc.Configuration().Tariffs.Flyer[pricing.SideRecto][0].Price)
}

// TestQuoteService_ReloadDuringCalculation tests that a quote priced with the
// previous rates is never served once the new ones are active.
func TestQuoteService_ReloadDuringCalculation(t *testing.T) {
	c := cache.NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int64
	floorPlusOne := pricing.CalculatorFunc(func(cfg *pricing.Configuration, _ pricing.Options, _ int) (pricing.PricedJob, error) {
		if atomic.AddInt64(&calls, 1) == 1 {
			close(started)
			<-release
		}
		return pricing.PricedJob{Base: cfg.Fixed.MinimumPrice + 1}, nil
	})

	svc := NewQuoteService(flyerRates(40), WithCache(c), WithEngineOptions(pricing.WithCalculator(pricing.ProductFlyer, floorPlusOne)))
	ctx := context.Background()
	req := QuoteRequest{Product: pricing.ProductFlyer, Quantity: 100}

	done := make(chan *pricing.Quote)
	go func() {
		q, err := svc.Calculate(ctx, req)
		assert.NoError(t, err)
		done <- q
	}()
	<-started

	raised := flyerRates(40)
	raised.Fixed.MinimumPrice = 100
	svc.Reload(ctx, raised)
	close(release)

	stale := <-done
	assert.InDelta(t, 29, stale.BasePrice, 0.001, "the in-flight call finishes on the rates it started with")

	fresh, err := svc.Calculate(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 101, fresh.BasePrice, 0.001)
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

// TestQuoteService_Fingerprint tests that the fingerprint follows the rates.
func TestQuoteService_Fingerprint(t *testing.T) {
	svc := NewQuoteService(flyerRates(40))
	ctx := context.Background()
	initial := svc.Fingerprint()

	svc.Reload(ctx, flyerRates(40))
	assert.Equal(t, initial, svc.Fingerprint(), "equal rates keep the fingerprint")

	svc.Reload(ctx, flyerRates(41))
	assert.NotEqual(t, initial, svc.Fingerprint())
	assert.Equal(t, pricing.Fingerprint(flyerRates(41)), svc.Fingerprint())
}

// TestQuoteService_Summary tests summary rendering and the unavailable marker.
func TestQuoteService_Summary(t *testing.T) {
	svc := NewQuoteService(flyerRates(40))
	ctx := context.Background()

	text, q, err := svc.Summary(ctx, QuoteRequest{
		Product:  pricing.ProductFlyer,
		Quantity: 100,
		Options:  pricing.Options{Side: pricing.SideRectoVerso, Paper: &pricing.PaperOffset80},
	})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Contains(t, text, "Impression: Recto/Verso")

	text, q, err = svc.Summary(ctx, QuoteRequest{Product: "mug", Quantity: 1})
	assert.ErrorIs(t, err, pricing.ErrUnknownProduct)
	assert.Nil(t, q)
	assert.Equal(t, pricing.SummaryUnavailable, text)
}

// TestQuoteRequest_CacheKey tests that every priced input changes the key.
func TestQuoteRequest_CacheKey(t *testing.T) {
	base := QuoteRequest{Product: pricing.ProductBrochure, Quantity: 50, Options: pricing.Options{Format: pricing.FormatA5, Pages: 16}}

	variants := []QuoteRequest{
		func() QuoteRequest { r := base; r.Quantity = 51; return r }(),
		func() QuoteRequest { r := base; r.Options.Pages = 20; return r }(),
		func() QuoteRequest { r := base; r.Options.Lamination = true; return r }(),
		func() QuoteRequest { r := base; r.Options.CoverPaper = &pricing.PaperOffset100; return r }(),
		func() QuoteRequest { r := base; r.Design = &pricing.DesignRequest{Kind: pricing.DesignLayout}; return r }(),
		func() QuoteRequest { r := base; r.Product = pricing.ProductBook; return r }(),
	}

	seen := map[string]bool{base.cacheKey(): true}
	for _, v := range variants {
		key := v.cacheKey()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
	assert.Equal(t, base.cacheKey(), QuoteRequest{Product: pricing.ProductBrochure, Quantity: 50, Options: pricing.Options{Format: pricing.FormatA5, Pages: 16}}.cacheKey())
}

// TestQuoteService_ConcurrentReload tests calculating while rates are swapped.
func TestQuoteService_ConcurrentReload(t *testing.T) {
	svc := NewQuoteService(flyerRates(40))
	ctx := context.Background()
	req := QuoteRequest{Product: pricing.ProductFlyer, Quantity: 100, Options: pricing.Options{Paper: &pricing.PaperOffset80}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			q, err := svc.Calculate(ctx, req)
			if assert.NoError(t, err) {
				assert.Contains(t, []float64{40, 80}, q.Total)
			}
		}()
		go func(i int) {
			defer wg.Done()
			svc.Reload(ctx, flyerRates(float64(40*(1+i%2))))
		}(i)
	}
	wg.Wait()
}
