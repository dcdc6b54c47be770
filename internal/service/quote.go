package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/service/cache"
)

// QuoteRequest is one pricing request in resolved form.
type QuoteRequest struct {
	Product  pricing.ProductType
	Options  pricing.Options
	Quantity int
	Design   *pricing.DesignRequest
}

// cacheKey renders every input that affects the price.
func (r QuoteRequest) cacheKey() string {
	o := r.Options
	parts := []string{
		string(r.Product),
		strconv.Itoa(r.Quantity),
		string(o.Side),
		string(o.Finish),
		string(o.Format),
		strconv.Itoa(o.Pages),
		strconv.FormatBool(o.Lamination),
		paperKey(o.Paper),
		paperKey(o.InnerPaper),
		paperKey(o.CoverPaper),
		o.Binding,
	}
	if r.Design != nil {
		parts = append(parts, string(r.Design.Kind))
	} else {
		parts = append(parts, "")
	}
	return strings.Join(parts, "|")
}

func paperKey(p *pricing.Paper) string {
	if p == nil {
		return ""
	}
	return p.Code
}

// QuoteCalculator prices quote requests against the active rates.
type QuoteCalculator interface {
	Calculate(ctx context.Context, req QuoteRequest) (*pricing.Quote, error)
	// Summary prices req and renders the job ticket text. It returns the
	// unavailable marker and the pricing error when the quote fails.
	Summary(ctx context.Context, req QuoteRequest) (string, *pricing.Quote, error)
	// Reload swaps the active rates and drops every cached quote.
	Reload(ctx context.Context, cfg pricing.Configuration)
	Configuration() pricing.Configuration
}

// Option configures a QuoteService.
type Option func(*QuoteService)

// QuoteService implements QuoteCalculator over a pricing.Engine. The engine
// is replaced atomically on reload so in-flight requests finish on the rates
// they started with.
type QuoteService struct {
	engine     atomic.Pointer[pricing.Engine]
	cache      cache.Cache
	engineOpts []pricing.EngineOption
}

// NewQuoteService creates a quote service pricing against cfg.
func NewQuoteService(cfg pricing.Configuration, opts ...Option) *QuoteService {
	s := &QuoteService{}
	for _, opt := range opts {
		opt(s)
	}
	s.engine.Store(pricing.NewEngine(cfg, s.engineOpts...))
	return s
}

// WithCache caches computed quotes in c.
func WithCache(c cache.Cache) Option {
	return func(s *QuoteService) {
		s.cache = c
	}
}

// WithEngineOptions passes options to every engine the service builds.
func WithEngineOptions(opts ...pricing.EngineOption) Option {
	return func(s *QuoteService) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// Calculate prices req, serving repeated requests from the cache.
func (s *QuoteService) Calculate(ctx context.Context, req QuoteRequest) (*pricing.Quote, error) {
	start := time.Now()
	engine := s.engine.Load()
	label := productLabel(engine, req.Product)

	// quotes priced by a replaced engine land under a key nobody reads again
	key := engine.Fingerprint() + "|" + req.cacheKey()
	if s.cache != nil {
		if q, ok := s.cache.Get(ctx, key); ok {
			metrics.RecordQuote(time.Since(start), label, metrics.QuoteCached, q.Total)
			return &q, nil
		}
	}

	q, err := engine.Calculate(req.Product, req.Options, req.Quantity, req.Design)
	if err != nil {
		metrics.RecordQuote(time.Since(start), label, failureStatus(err), 0)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, *q)
	}
	metrics.RecordQuote(time.Since(start), label, metrics.QuoteSuccess, q.Total)
	return q, nil
}

// Summary prices req and renders its summary.
func (s *QuoteService) Summary(ctx context.Context, req QuoteRequest) (string, *pricing.Quote, error) {
	q, err := s.Calculate(ctx, req)
	if err != nil {
		return pricing.SummaryUnavailable, nil, err
	}
	return pricing.RenderSummary(q), q, nil
}

// Reload installs cfg as the active rates and drops the cached quotes.
func (s *QuoteService) Reload(ctx context.Context, cfg pricing.Configuration) {
	s.engine.Store(pricing.NewEngine(cfg, s.engineOpts...))
	if s.cache != nil {
		s.cache.Clear(ctx)
	}
}

// Fingerprint identifies the active rates.
func (s *QuoteService) Fingerprint() string {
	return s.engine.Load().Fingerprint()
}

// Configuration returns the normalized active rates.
func (s *QuoteService) Configuration() pricing.Configuration {
	return s.engine.Load().Configuration()
}

func productLabel(engine *pricing.Engine, product pricing.ProductType) string {
	if engine.Supports(product) {
		return string(product)
	}
	return "unknown"
}

func failureStatus(err error) string {
	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, pricing.ErrUnknownProduct):
		return "unknown_product"
	case errors.Is(err, pricing.ErrMissingRateTable):
		return "missing_rate_table"
	default:
		return "calculation_error"
	}
}
