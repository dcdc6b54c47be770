package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches a reference.
var ErrNotFound = errors.New("document not found")

// Capacities of the quote and order books. Older records are dropped.
const (
	QuoteBookCapacity = 50
	OrderBookCapacity = 100
)

// newestFirst sorts records by the time they were last saved. Saves within
// the same millisecond fall back to insertion order.
var newestFirst = bson.D{{Key: "saved_at", Value: -1}, {Key: "_id", Value: -1}}

// upsertByRef replaces the record with the same ref, or inserts it, and
// returns the id of an inserted document.
func upsertByRef(ctx context.Context, coll *mongo.Collection, ref string, doc interface{}) (primitive.ObjectID, error) {
	res, err := coll.ReplaceOne(ctx, bson.M{"ref": ref}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.UpsertedID.(primitive.ObjectID)
	return id, nil
}

// trimTo deletes every record beyond the newest keep.
func trimTo(ctx context.Context, coll *mongo.Collection, keep int) error {
	if keep <= 0 {
		return nil
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().
		SetSort(newestFirst).
		SetSkip(int64(keep)).
		SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var stale []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &stale); err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, len(stale))
	for i, s := range stale {
		ids[i] = s.ID
	}
	_, err = coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

// findByRef decodes the record with ref into out.
func findByRef(ctx context.Context, coll *mongo.Collection, ref string, out interface{}) error {
	err := coll.FindOne(ctx, bson.M{"ref": ref}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// setByRef applies fields to the record with ref, stamps last_modified and
// decodes the updated record into out.
func setByRef(ctx context.Context, coll *mongo.Collection, ref string, fields bson.M, out interface{}) error {
	fields["last_modified"] = time.Now()
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"ref": ref},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// listNewest decodes up to limit records matching filter, newest first.
func listNewest(ctx context.Context, coll *mongo.Collection, filter bson.M, limit int, out interface{}) error {
	opts := options.Find().SetSort(newestFirst)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	return cursor.All(ctx, out)
}
