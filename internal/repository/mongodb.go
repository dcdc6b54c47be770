// Package repository stores rate versions, the quote and order books, the
// paper stock and the request log in MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// logsTTLIndex names the expiry index on the logs collection.
const logsTTLIndex = "timestamp_ttl"

// MongoConfig holds the client pool and timeout settings.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	OperationTimeout       time.Duration
	// Compression negotiates zstd, snappy or zlib with the server.
	Compression bool
}

// DefaultMongoConfig returns the pool used by the service.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		OperationTimeout:       30 * time.Second,
		Compression:            true,
	}
}

func (c MongoConfig) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(c.MinPoolSize).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetConnectTimeout(c.ConnectTimeout).
		SetServerSelectionTimeout(c.ServerSelectionTimeout).
		SetTimeout(c.OperationTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if c.Compression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	return opts
}

// MongoDB holds the client and the service's collections.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	RateConfigs *mongo.Collection
	Quotes      *mongo.Collection
	Orders      *mongo.Collection
	Logs        *mongo.Collection

	Stock          *mongo.Collection
	StockMovements *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings the server and makes sure the
// indexes exist. The client is disconnected again on any failure.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:      client,
		Database:    db,
		RateConfigs: db.Collection("rate_configs"),
		Quotes:      db.Collection("quotes"),
		Orders:      db.Collection("orders"),
		Logs:        db.Collection("logs"),

		Stock:          db.Collection("paper_stock"),
		StockMovements: db.Collection("stock_movements"),
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	byCollection := []struct {
		coll    *mongo.Collection
		indexes []mongo.IndexModel
	}{
		{m.RateConfigs, []mongo.IndexModel{
			{Keys: bson.D{{Key: "active", Value: 1}}},
			{Keys: bson.D{{Key: "version", Value: -1}}, Options: options.Index().SetUnique(true)},
		}},
		{m.Quotes, []mongo.IndexModel{
			{Keys: bson.D{{Key: "ref", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "saved_at", Value: -1}}},
		}},
		{m.Orders, []mongo.IndexModel{
			{Keys: bson.D{{Key: "ref", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "saved_at", Value: -1}}},
			{Keys: bson.D{{Key: "production_status", Value: 1}}},
			{Keys: bson.D{{Key: "accounting_status", Value: 1}}},
		}},
		{m.Stock, []mongo.IndexModel{
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{m.StockMovements, []mongo.IndexModel{
			{Keys: bson.D{{Key: "code", Value: 1}, {Key: "at", Value: -1}}},
			{Keys: bson.D{{Key: "at", Value: -1}}},
		}},
		{m.Logs, []mongo.IndexModel{
			{Keys: bson.D{{Key: "request_id", Value: 1}}},
			{Keys: bson.D{{Key: "actor", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}}},
		}},
	}

	for _, c := range byCollection {
		if _, err := c.coll.Indexes().CreateMany(ctx, c.indexes); err != nil {
			return fmt.Errorf("%s: %w", c.coll.Name(), err)
		}
	}
	return nil
}

// SetLogsTTL makes log entries expire ttl after their timestamp. A
// non-positive ttl keeps entries forever.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	if _, err := m.Logs.Indexes().DropOne(ctx, logsTTLIndex); err != nil && !isMissingIndex(err) {
		return fmt.Errorf("drop logs TTL index: %w", err)
	}
	if ttl <= 0 {
		return nil
	}

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName(logsTTLIndex).SetExpireAfterSeconds(int32(ttl / time.Second)),
	})
	return err
}

// isMissingIndex reports a drop of an index or collection that does not
// exist yet.
func isMissingIndex(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IndexNotFound, NamespaceNotFound
		return cmdErr.Code == 27 || cmdErr.Code == 26
	}
	return false
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server with a short deadline.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
