package repository

import (
	"context"
	"time"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogsRepository stores request lines and audit records in the logs
// collection. Old entries expire through the TTL index set by SetLogsTTL.
type LogsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs, now: time.Now}
}

// Insert writes a batch of entries. The write is unordered so one bad
// entry does not drop the rest of the batch.
func (r *LogsRepository) Insert(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := r.now()
	docs := make([]any, len(entries))
	for i, e := range entries {
		e.Stamp(now)
		docs[i] = e
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Find returns one page of entries matching f, newest first. f is
// expected to be normalized.
func (r *LogsRepository) Find(ctx context.Context, f model.ActivityFilter) ([]model.LogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cursor, err := r.collection.Find(ctx, activityQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	entries := []model.LogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns how many entries match f, ignoring its page bounds.
func (r *LogsRepository) Count(ctx context.Context, f model.ActivityFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, activityQuery(f))
}

func activityQuery(f model.ActivityFilter) bson.D {
	q := bson.D{}
	for _, field := range []struct{ key, value string }{
		{"actor", f.Actor},
		{"action_type", f.Action},
		{"request_id", f.RequestID},
		{"level", f.Level},
	} {
		if field.value != "" {
			q = append(q, bson.E{Key: field.key, Value: field.value})
		}
	}
	if f.AuditOnly && f.Action == "" {
		q = append(q, bson.E{Key: "action_type", Value: bson.D{{Key: "$exists", Value: true}, {Key: "$ne", Value: ""}}})
	}

	window := bson.D{}
	if !f.Since.IsZero() {
		window = append(window, bson.E{Key: "$gte", Value: f.Since})
	}
	if !f.Until.IsZero() {
		window = append(window, bson.E{Key: "$lte", Value: f.Until})
	}
	if len(window) > 0 {
		q = append(q, bson.E{Key: "timestamp", Value: window})
	}
	return q
}
