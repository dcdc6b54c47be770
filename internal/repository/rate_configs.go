package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/print-quote-service/internal/pricing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RateConfigDocument is one version of the rate configuration.
type RateConfigDocument struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Config    pricing.Configuration `bson:"config" json:"config"`
	Active    bool                  `bson:"active" json:"active"`
	Version   int                   `bson:"version" json:"version"`
	Repairs   []string              `bson:"repairs,omitempty" json:"repairs,omitempty"`
	CreatedAt time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at" json:"updated_at"`
	CreatedBy string                `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// RateConfigRepository stores versioned rate configurations. Exactly one
// version is active at a time.
type RateConfigRepository struct {
	collection *mongo.Collection
}

// NewRateConfigRepository creates a new rate configuration repository.
func NewRateConfigRepository(db *MongoDB) *RateConfigRepository {
	return &RateConfigRepository{
		collection: db.RateConfigs,
	}
}

// GetActive returns the active configuration, or nil when none was stored yet.
func (r *RateConfigRepository) GetActive(ctx context.Context) (*RateConfigDocument, error) {
	var doc RateConfigDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores cfg as the next version and makes it the active one.
func (r *RateConfigRepository) Create(ctx context.Context, cfg pricing.Configuration, repairs []string, createdBy string) (*RateConfigDocument, error) {
	version, err := r.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	doc := RateConfigDocument{
		ID:        primitive.NewObjectID(),
		Config:    cfg,
		Active:    true,
		Version:   version + 1,
		Repairs:   repairs,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Activate makes a stored version the active one again.
func (r *RateConfigRepository) Activate(ctx context.Context, version int) (*RateConfigDocument, error) {
	var target RateConfigDocument
	err := r.collection.FindOne(ctx, bson.M{"version": version}).Decode(&target)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true, "_id": bson.M{"$ne": target.ID}},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	var doc RateConfigDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": target.ID},
		bson.M{"$set": bson.M{"active": true, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns stored versions, newest first.
func (r *RateConfigRepository) List(ctx context.Context, limit int) ([]RateConfigDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []RateConfigDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *RateConfigRepository) latestVersion(ctx context.Context) (int, error) {
	var latest RateConfigDocument
	err := r.collection.FindOne(
		ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}).SetProjection(bson.M{"version": 1}),
	).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.Version, nil
}
