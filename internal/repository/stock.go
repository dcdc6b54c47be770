package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInsufficientStock is returned for a movement that would take a paper
// below zero sheets.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockRepository stores the paper stock, keyed by paper code, and the
// movements applied to it.
type StockRepository struct {
	papers    *mongo.Collection
	movements *mongo.Collection
}

// NewStockRepository creates a new stock repository.
func NewStockRepository(db *MongoDB) *StockRepository {
	return &StockRepository{
		papers:    db.Stock,
		movements: db.StockMovements,
	}
}

// List returns every paper ordered by code.
func (r *StockRepository) List(ctx context.Context) ([]model.PaperStock, error) {
	cursor, err := r.papers.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var papers []model.PaperStock
	if err := cursor.All(ctx, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

// Get returns the paper with code.
func (r *StockRepository) Get(ctx context.Context, code string) (*model.PaperStock, error) {
	var paper model.PaperStock
	err := r.papers.FindOne(ctx, bson.M{"code": code}).Decode(&paper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// Upsert stores paper, replacing the paper with the same code.
func (r *StockRepository) Upsert(ctx context.Context, paper *model.PaperStock) error {
	paper.UpdatedAt = time.Now()
	paper.ID = primitive.NilObjectID

	_, err := r.papers.ReplaceOne(ctx, bson.M{"code": paper.Code}, paper, options.Replace().SetUpsert(true))
	return err
}

// ApplyMovement adds movement.Delta to the paper's quantity and records the
// movement with the resulting quantity. A withdrawal larger than the stock
// fails with ErrInsufficientStock and changes nothing.
func (r *StockRepository) ApplyMovement(ctx context.Context, movement *model.StockMovement) (*model.PaperStock, error) {
	filter := bson.M{"code": movement.Code}
	if movement.Delta < 0 {
		filter["qty"] = bson.M{"$gte": -movement.Delta}
	}
	if movement.At.IsZero() {
		movement.At = time.Now()
	}

	var paper model.PaperStock
	err := r.papers.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{
			"$inc": bson.M{"qty": movement.Delta},
			"$set": bson.M{"updated_at": movement.At},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&paper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, getErr := r.Get(ctx, movement.Code); getErr != nil {
			return nil, getErr
		}
		return nil, ErrInsufficientStock
	}
	if err != nil {
		return nil, err
	}

	movement.QtyAfter = paper.Qty
	res, err := r.movements.InsertOne(ctx, movement)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		movement.ID = id
	}
	return &paper, nil
}

// Movements returns up to limit movements, newest first. An empty code
// lists the movements of every paper.
func (r *StockRepository) Movements(ctx context.Context, code string, limit int) ([]model.StockMovement, error) {
	filter := bson.M{}
	if code != "" {
		filter["code"] = code
	}
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.movements.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var movements []model.StockMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}
