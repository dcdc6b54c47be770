package repository

import (
	"context"
	"time"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuotesRepository stores saved quotes, keyed by ref.
type QuotesRepository struct {
	collection *mongo.Collection
	capacity   int
}

// NewQuotesRepository creates a new quotes repository.
func NewQuotesRepository(db *MongoDB) *QuotesRepository {
	return &QuotesRepository{
		collection: db.Quotes,
		capacity:   QuoteBookCapacity,
	}
}

// Save stores quote, replacing any quote with the same ref, moves it to the
// top of the book and drops the oldest quotes beyond capacity.
func (r *QuotesRepository) Save(ctx context.Context, quote *model.QuoteRecord) error {
	now := time.Now()
	quote.SavedAt = now
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = now
	}

	id, err := upsertByRef(ctx, r.collection, quote.Ref, quote)
	if err != nil {
		return err
	}
	if !id.IsZero() {
		quote.ID = id
	}

	return trimTo(ctx, r.collection, r.capacity)
}

// Get returns the quote with ref.
func (r *QuotesRepository) Get(ctx context.Context, ref string) (*model.QuoteRecord, error) {
	var quote model.QuoteRecord
	if err := findByRef(ctx, r.collection, ref, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// List returns the most recently saved quotes.
func (r *QuotesRepository) List(ctx context.Context, limit int) ([]model.QuoteRecord, error) {
	var quotes []model.QuoteRecord
	if err := listNewest(ctx, r.collection, bson.M{}, limit, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpdateStatus sets the status of a quote in place.
func (r *QuotesRepository) UpdateStatus(ctx context.Context, ref, status string) (*model.QuoteRecord, error) {
	var quote model.QuoteRecord
	if err := setByRef(ctx, r.collection, ref, bson.M{"status": status}, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
