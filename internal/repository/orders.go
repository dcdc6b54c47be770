package repository

import (
	"context"
	"time"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderFilter narrows an order listing to one status value.
type OrderFilter struct {
	Kind   model.StatusKind
	Status string
	Limit  int
}

// OrdersRepository stores orders, keyed by ref.
type OrdersRepository struct {
	collection *mongo.Collection
	capacity   int
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
		capacity:   OrderBookCapacity,
	}
}

// Save stores order, replacing any order with the same ref, and drops the
// oldest orders beyond capacity.
func (r *OrdersRepository) Save(ctx context.Context, order *model.OrderRecord) error {
	now := time.Now()
	order.SavedAt = now
	if order.Date.IsZero() {
		order.Date = now
	}

	id, err := upsertByRef(ctx, r.collection, order.Ref, order)
	if err != nil {
		return err
	}
	if !id.IsZero() {
		order.ID = id
	}

	return trimTo(ctx, r.collection, r.capacity)
}

// Get returns the order with ref.
func (r *OrdersRepository) Get(ctx context.Context, ref string) (*model.OrderRecord, error) {
	var order model.OrderRecord
	if err := findByRef(ctx, r.collection, ref, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns the most recent orders matching filter. An empty status
// lists every order.
func (r *OrdersRepository) List(ctx context.Context, filter OrderFilter) ([]model.OrderRecord, error) {
	query := bson.M{}
	if filter.Status != "" {
		query[statusField(filter.Kind)] = filter.Status
	}

	var orders []model.OrderRecord
	if err := listNewest(ctx, r.collection, query, filter.Limit, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the production or accounting status of an order.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, ref string, kind model.StatusKind, status string) (*model.OrderRecord, error) {
	var order model.OrderRecord
	if err := setByRef(ctx, r.collection, ref, bson.M{statusField(kind): status}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func statusField(kind model.StatusKind) string {
	if kind == model.StatusAccounting {
		return "accounting_status"
	}
	return "production_status"
}
