// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/pricing"
)

// RateConfigRepositoryInterface defines the interface for rate configuration storage.
type RateConfigRepositoryInterface interface {
	GetActive(ctx context.Context) (*RateConfigDocument, error)
	Create(ctx context.Context, cfg pricing.Configuration, repairs []string, createdBy string) (*RateConfigDocument, error)
	Activate(ctx context.Context, version int) (*RateConfigDocument, error)
	List(ctx context.Context, limit int) ([]RateConfigDocument, error)
}

// QuotesRepositoryInterface defines the interface for the quote book.
type QuotesRepositoryInterface interface {
	Save(ctx context.Context, quote *model.QuoteRecord) error
	Get(ctx context.Context, ref string) (*model.QuoteRecord, error)
	List(ctx context.Context, limit int) ([]model.QuoteRecord, error)
	UpdateStatus(ctx context.Context, ref, status string) (*model.QuoteRecord, error)
}

// OrdersRepositoryInterface defines the interface for the order book.
type OrdersRepositoryInterface interface {
	Save(ctx context.Context, order *model.OrderRecord) error
	Get(ctx context.Context, ref string) (*model.OrderRecord, error)
	List(ctx context.Context, filter OrderFilter) ([]model.OrderRecord, error)
	UpdateStatus(ctx context.Context, ref string, kind model.StatusKind, status string) (*model.OrderRecord, error)
}

// StockRepositoryInterface defines the interface for the paper stock.
type StockRepositoryInterface interface {
	List(ctx context.Context) ([]model.PaperStock, error)
	Get(ctx context.Context, code string) (*model.PaperStock, error)
	Upsert(ctx context.Context, paper *model.PaperStock) error
	ApplyMovement(ctx context.Context, movement *model.StockMovement) (*model.PaperStock, error)
	Movements(ctx context.Context, code string, limit int) ([]model.StockMovement, error)
}

// LogsRepositoryInterface defines the interface for the request and audit log.
type LogsRepositoryInterface interface {
	Insert(ctx context.Context, entries []*model.LogEntry) error
	Find(ctx context.Context, filter model.ActivityFilter) ([]model.LogEntry, error)
	Count(ctx context.Context, filter model.ActivityFilter) (int64, error)
}
