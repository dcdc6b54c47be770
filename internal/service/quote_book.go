package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/ledger"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidRecord is returned for a quote or order that cannot be saved.
var ErrInvalidRecord = errors.New("invalid record")

// LedgerPublisher queues order rows for the remote ledger.
type LedgerPublisher interface {
	Enqueue(entry ledger.Entry) bool
}

// QuoteBook stores quotes and orders and converts one into the other.
type QuoteBook interface {
	SaveQuote(ctx context.Context, quote *model.QuoteRecord) (*model.QuoteRecord, error)
	GetQuote(ctx context.Context, ref string) (*model.QuoteRecord, error)
	ListQuotes(ctx context.Context, limit int) ([]model.QuoteRecord, error)
	UpdateQuoteStatus(ctx context.Context, ref, status string) (*model.QuoteRecord, error)
	ConvertToOrder(ctx context.Context, ref string) (*model.OrderRecord, error)

	SaveOrder(ctx context.Context, order *model.OrderRecord) (*model.OrderRecord, error)
	GetOrder(ctx context.Context, ref string) (*model.OrderRecord, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, ref string, kind model.StatusKind, status string) (*model.OrderRecord, error)
	Stats(ctx context.Context) (*model.OrderStats, error)
}

// QuoteBookOption configures a QuoteBookImpl.
type QuoteBookOption func(*QuoteBookImpl)

// WithLedger pushes every saved or updated order to publisher.
func WithLedger(publisher LedgerPublisher) QuoteBookOption {
	return func(b *QuoteBookImpl) {
		b.ledger = publisher
	}
}

// WithClock replaces the clock used for refs and statistics.
func WithClock(now func() time.Time) QuoteBookOption {
	return func(b *QuoteBookImpl) {
		b.now = now
	}
}

// QuoteBookImpl implements QuoteBook.
type QuoteBookImpl struct {
	quotes repository.QuotesRepositoryInterface
	orders repository.OrdersRepositoryInterface
	ledger LedgerPublisher
	now    func() time.Time
}

// NewQuoteBook creates a new quote book.
func NewQuoteBook(quotes repository.QuotesRepositoryInterface, orders repository.OrdersRepositoryInterface, opts ...QuoteBookOption) *QuoteBookImpl {
	b := &QuoteBookImpl{
		quotes: quotes,
		orders: orders,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// newRef builds a reference from the last six digits of the millisecond clock.
func (b *QuoteBookImpl) newRef(prefix string) string {
	return fmt.Sprintf("%s%06d", prefix, b.now().UnixMilli()%1_000_000)
}

// SaveQuote stores quote, filling the ref, price, description and status
// from the attached pricing result when they are missing.
func (b *QuoteBookImpl) SaveQuote(ctx context.Context, quote *model.QuoteRecord) (*model.QuoteRecord, error) {
	if b.quotes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := completeRecord(&quote.Product, &quote.Quantity, &quote.Price, &quote.Description, quote.Quote); err != nil {
		return nil, err
	}
	if quote.Ref == "" {
		quote.Ref = b.newRef(model.QuoteRefPrefix)
	}
	if quote.Status == "" {
		quote.Status = model.QuoteStatusPending
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = b.now()
	}

	if err := b.quotes.Save(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	return quote, nil
}

func (b *QuoteBookImpl) GetQuote(ctx context.Context, ref string) (*model.QuoteRecord, error) {
	if b.quotes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return b.quotes.Get(ctx, ref)
}

func (b *QuoteBookImpl) ListQuotes(ctx context.Context, limit int) ([]model.QuoteRecord, error) {
	if b.quotes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return b.quotes.List(ctx, limit)
}

func (b *QuoteBookImpl) UpdateQuoteStatus(ctx context.Context, ref, status string) (*model.QuoteRecord, error) {
	if b.quotes == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidRecord)
	}
	return b.quotes.UpdateStatus(ctx, ref, status)
}

// ConvertToOrder creates an order from the quote with ref and marks the
// quote as converted. The order starts pending and unpaid.
func (b *QuoteBookImpl) ConvertToOrder(ctx context.Context, ref string) (*model.OrderRecord, error) {
	if b.quotes == nil || b.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}

	quote, err := b.quotes.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	order := &model.OrderRecord{
		Ref:              b.newRef(model.OrderRefPrefix),
		Client:           quote.Client,
		Product:          quote.Product,
		Quantity:         quote.Quantity,
		Price:            quote.Price,
		Description:      quote.Description,
		Salesperson:      quote.Salesperson,
		ProductionStatus: model.ProductionPending,
		AccountingStatus: model.AccountingUnpaid,
		ConvertedFrom:    quote.Ref,
		Quote:            quote.Quote,
		Date:             b.now(),
	}
	if err := b.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	b.publish(order)

	quote.Status = model.QuoteStatusConverted
	quote.ConvertedTo = order.Ref
	if err := b.quotes.Save(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to mark quote converted: %w", err)
	}
	return order, nil
}

// SaveOrder stores order, defaulting its ref and statuses, and pushes it to
// the ledger.
func (b *QuoteBookImpl) SaveOrder(ctx context.Context, order *model.OrderRecord) (*model.OrderRecord, error) {
	if b.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := completeRecord(&order.Product, &order.Quantity, &order.Price, &order.Description, order.Quote); err != nil {
		return nil, err
	}
	if order.Ref == "" {
		order.Ref = b.newRef(model.OrderRefPrefix)
	}
	if order.ProductionStatus == "" {
		order.ProductionStatus = model.ProductionPending
	}
	if order.AccountingStatus == "" {
		order.AccountingStatus = model.AccountingUnpaid
	}
	if order.Date.IsZero() {
		order.Date = b.now()
	}

	if err := b.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	b.publish(order)
	return order, nil
}

func (b *QuoteBookImpl) GetOrder(ctx context.Context, ref string) (*model.OrderRecord, error) {
	if b.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return b.orders.Get(ctx, ref)
}

func (b *QuoteBookImpl) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.OrderRecord, error) {
	if b.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return b.orders.List(ctx, filter)
}

// UpdateOrderStatus sets one of the order statuses and pushes the updated
// order to the ledger.
func (b *QuoteBookImpl) UpdateOrderStatus(ctx context.Context, ref string, kind model.StatusKind, status string) (*model.OrderRecord, error) {
	if b.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidRecord)
	}

	order, err := b.orders.UpdateStatus(ctx, ref, kind, status)
	if err != nil {
		return nil, err
	}
	b.publish(order)
	return order, nil
}

// Stats sums revenue over all orders, today's orders and this month's
// orders, and lists the production queue and today's completed orders.
func (b *QuoteBookImpl) Stats(ctx context.Context) (*model.OrderStats, error) {
	if b.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}

	orders, err := b.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}

	now := b.now()
	var all, today, month decimal.Decimal
	stats := &model.OrderStats{
		ProductionQueue: []model.OrderRecord{},
		CompletedToday:  []model.OrderRecord{},
	}

	for _, o := range orders {
		price, err := decimal.NewFromString(o.Price)
		if err != nil {
			log.Warn().Str("ref", o.Ref).Str("price", o.Price).Msg("Skipping order with unreadable price")
			price = decimal.Zero
		}

		date := o.Date.In(now.Location())
		isToday := sameDay(date, now)
		all = all.Add(price)
		if isToday {
			today = today.Add(price)
		}
		if date.Year() == now.Year() && date.Month() == now.Month() {
			month = month.Add(price)
		}

		if o.ProductionStatus == model.ProductionPending {
			stats.ProductionQueue = append(stats.ProductionQueue, o)
		}
		if isToday && o.ProductionStatus == model.ProductionCompleted {
			stats.CompletedToday = append(stats.CompletedToday, o)
		}
	}

	stats.Revenue = model.RevenueStats{
		All:   all.StringFixed(2),
		Today: today.StringFixed(2),
		Month: month.StringFixed(2),
	}
	return stats, nil
}

func (b *QuoteBookImpl) publish(order *model.OrderRecord) {
	if b.ledger == nil || order == nil {
		return
	}
	if !b.ledger.Enqueue(ledgerEntry(order)) {
		log.Warn().Str("ref", order.Ref).Msg("Ledger queue full, order not synced")
	}
}

// ImportEntries applies ledger rows to the order book. The ledger wins for
// every column it holds; the attached quote and conversion link are kept.
// Orders absent from the ledger stay, and imported orders are not pushed
// back. It returns the number of orders created or changed.
func (b *QuoteBookImpl) ImportEntries(ctx context.Context, entries []ledger.Entry) (int, error) {
	if b.orders == nil {
		return 0, ErrRepositoryNotConfigured
	}

	changed := 0
	for _, entry := range entries {
		current, err := b.orders.Get(ctx, entry.Ref)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			current = &model.OrderRecord{Ref: entry.Ref}
		case err != nil:
			return changed, fmt.Errorf("failed to read order %s: %w", entry.Ref, err)
		}

		next := *current
		applyEntry(&next, entry)
		if current.ID != primitive.NilObjectID && sameEntry(ledgerEntry(current), ledgerEntry(&next)) {
			continue
		}
		if next.Date.IsZero() {
			next.Date = b.now()
		}
		if err := b.orders.Save(ctx, &next); err != nil {
			return changed, fmt.Errorf("failed to save order %s: %w", entry.Ref, err)
		}
		changed++
	}
	return changed, nil
}

func ledgerEntry(order *model.OrderRecord) ledger.Entry {
	return ledger.Entry{
		Date:             order.Date,
		Ref:              order.Ref,
		Client:           order.Client,
		Product:          string(order.Product),
		Quantity:         order.Quantity,
		Price:            order.Price,
		Details:          order.Description,
		Salesperson:      order.Salesperson,
		ProductionStatus: order.ProductionStatus,
		AccountingStatus: order.AccountingStatus,
	}
}

// applyEntry copies the ledger columns onto order. The sheet keeps days
// only, so a date on the same day leaves the stored time alone.
func applyEntry(order *model.OrderRecord, entry ledger.Entry) {
	order.Client = entry.Client
	order.Product = pricing.ProductType(entry.Product)
	order.Quantity = entry.Quantity
	order.Price = entry.Price
	if amount, err := decimal.NewFromString(entry.Price); err == nil {
		order.Price = amount.StringFixed(2)
	}
	order.Description = entry.Details
	order.Salesperson = entry.Salesperson
	order.ProductionStatus = entry.ProductionStatus
	order.AccountingStatus = entry.AccountingStatus
	if !entry.Date.IsZero() && !sameDay(entry.Date, order.Date.In(entry.Date.Location())) {
		order.Date = entry.Date
	}
}

func sameEntry(a, b ledger.Entry) bool {
	dateA, dateB := a.Date, b.Date
	a.Date, b.Date = time.Time{}, time.Time{}
	return a == b && dateA.Equal(dateB)
}

// completeRecord fills the product, quantity, price and description of a
// record from its pricing result and checks the price is a decimal amount.
func completeRecord(product *pricing.ProductType, quantity *int, price, description *string, quote *pricing.Quote) error {
	if quote != nil {
		if *product == "" {
			*product = quote.ProductType
		}
		if *quantity == 0 {
			*quantity = quote.Quantity
		}
		if *price == "" {
			*price = pricing.Amount(quote.Total).StringFixed(2)
		}
		if *description == "" {
			*description = pricing.RenderSummary(quote)
		}
	}

	if *product == "" {
		return fmt.Errorf("%w: product is required", ErrInvalidRecord)
	}
	if *quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidRecord)
	}
	amount, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("%w: price %q is not an amount", ErrInvalidRecord, *price)
	}
	*price = amount.StringFixed(2)
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
