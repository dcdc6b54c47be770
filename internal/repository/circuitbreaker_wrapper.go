package repository

import (
	"context"
	"errors"

	"github.com/guttosm/print-quote-service/internal/circuitbreaker"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/pricing"
)

// IsStoreFailure reports whether err should count against a repository
// circuit breaker. A missing document or a refused withdrawal is an
// answer, not an outage.
func IsStoreFailure(err error) bool {
	return !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInsufficientStock)
}

// guarded runs fn through cb and returns its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// RateConfigRepositoryWithCircuitBreaker wraps RateConfigRepository with circuit breaker protection.
type RateConfigRepositoryWithCircuitBreaker struct {
	repo           RateConfigRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRateConfigRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRateConfigRepositoryWithCircuitBreaker(repo RateConfigRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RateConfigRepositoryWithCircuitBreaker {
	return &RateConfigRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active configuration. While the circuit is open it
// reports no active configuration so the service keeps its current rates.
func (r *RateConfigRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*RateConfigDocument, error) {
	result, err := guarded(ctx, r.circuitBreaker, func() (*RateConfigDocument, error) {
		return r.repo.GetActive(ctx)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new active configuration version.
func (r *RateConfigRepositoryWithCircuitBreaker) Create(ctx context.Context, cfg pricing.Configuration, repairs []string, createdBy string) (*RateConfigDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() (*RateConfigDocument, error) {
		return r.repo.Create(ctx, cfg, repairs, createdBy)
	})
}

// Activate makes a stored version active again.
func (r *RateConfigRepositoryWithCircuitBreaker) Activate(ctx context.Context, version int) (*RateConfigDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() (*RateConfigDocument, error) {
		return r.repo.Activate(ctx, version)
	})
}

// List returns stored configuration versions.
func (r *RateConfigRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]RateConfigDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]RateConfigDocument, error) {
		return r.repo.List(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RateConfigRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// QuotesRepositoryWithCircuitBreaker wraps QuotesRepository with circuit breaker protection.
type QuotesRepositoryWithCircuitBreaker struct {
	repo           QuotesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewQuotesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewQuotesRepositoryWithCircuitBreaker(repo QuotesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *QuotesRepositoryWithCircuitBreaker {
	return &QuotesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Save stores a quote.
func (r *QuotesRepositoryWithCircuitBreaker) Save(ctx context.Context, quote *model.QuoteRecord) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, quote)
	})
}

// Get returns a quote by ref.
func (r *QuotesRepositoryWithCircuitBreaker) Get(ctx context.Context, ref string) (*model.QuoteRecord, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.QuoteRecord, error) {
		return r.repo.Get(ctx, ref)
	})
}

// List returns recent quotes.
func (r *QuotesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.QuoteRecord, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.QuoteRecord, error) {
		return r.repo.List(ctx, limit)
	})
}

// UpdateStatus sets a quote status.
func (r *QuotesRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, ref, status string) (*model.QuoteRecord, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.QuoteRecord, error) {
		return r.repo.UpdateStatus(ctx, ref, status)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *QuotesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit breaker protection.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           OrdersRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo OrdersRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Save stores an order.
func (r *OrdersRepositoryWithCircuitBreaker) Save(ctx context.Context, order *model.OrderRecord) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, order)
	})
}

// Get returns an order by ref.
func (r *OrdersRepositoryWithCircuitBreaker) Get(ctx context.Context, ref string) (*model.OrderRecord, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.OrderRecord, error) {
		return r.repo.Get(ctx, ref)
	})
}

// List returns recent orders matching filter.
func (r *OrdersRepositoryWithCircuitBreaker) List(ctx context.Context, filter OrderFilter) ([]model.OrderRecord, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.OrderRecord, error) {
		return r.repo.List(ctx, filter)
	})
}

// UpdateStatus sets an order status.
func (r *OrdersRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, ref string, kind model.StatusKind, status string) (*model.OrderRecord, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.OrderRecord, error) {
		return r.repo.UpdateStatus(ctx, ref, kind, status)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// StockRepositoryWithCircuitBreaker wraps StockRepository with circuit breaker protection.
type StockRepositoryWithCircuitBreaker struct {
	repo           StockRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewStockRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewStockRepositoryWithCircuitBreaker(repo StockRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *StockRepositoryWithCircuitBreaker {
	return &StockRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns every paper.
func (r *StockRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.PaperStock, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.PaperStock, error) {
		return r.repo.List(ctx)
	})
}

// Get returns a paper by code.
func (r *StockRepositoryWithCircuitBreaker) Get(ctx context.Context, code string) (*model.PaperStock, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.PaperStock, error) {
		return r.repo.Get(ctx, code)
	})
}

// Upsert stores a paper.
func (r *StockRepositoryWithCircuitBreaker) Upsert(ctx context.Context, paper *model.PaperStock) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, paper)
	})
}

// ApplyMovement changes a paper quantity.
func (r *StockRepositoryWithCircuitBreaker) ApplyMovement(ctx context.Context, movement *model.StockMovement) (*model.PaperStock, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.PaperStock, error) {
		return r.repo.ApplyMovement(ctx, movement)
	})
}

// Movements returns recent movements.
func (r *StockRepositoryWithCircuitBreaker) Movements(ctx context.Context, code string, limit int) ([]model.StockMovement, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.StockMovement, error) {
		return r.repo.Movements(ctx, code, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *StockRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a batch of entries. While the circuit is open the batch is
// dropped and nil returned, the service runs without its log.
func (r *LogsRepositoryWithCircuitBreaker) Insert(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Find reads a page of entries through the circuit breaker.
func (r *LogsRepositoryWithCircuitBreaker) Find(ctx context.Context, filter model.ActivityFilter) ([]model.LogEntry, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.LogEntry, error) {
		return r.repo.Find(ctx, filter)
	})
}

// Count counts matching entries through the circuit breaker.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, filter model.ActivityFilter) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, filter)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
