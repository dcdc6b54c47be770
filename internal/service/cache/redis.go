package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisClient is the subset of go-redis used by RedisCache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisCache shares quotes between service instances. Redis errors are
// logged and treated as misses so pricing never depends on the cache.
type RedisCache struct {
	client RedisClient
	ttl    time.Duration
	prefix string
}

// NewRedisClient creates a go-redis client.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     50,
		MinIdleConns: 5,
	})
}

// NewRedisCache wraps client. Keys are stored under prefix with the given TTL.
func NewRedisCache(client RedisClient, ttl time.Duration, prefix string) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: prefix}
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get retrieves and decodes a quote.
func (r *RedisCache) Get(ctx context.Context, key string) (pricing.Quote, bool) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("Redis get failed")
			metrics.RecordCacheOperation("redis", "get", "error")
		} else {
			metrics.RecordCacheOperation("redis", "get", "miss")
		}
		return pricing.Quote{}, false
	}

	var q pricing.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cached quote")
		metrics.RecordCacheOperation("redis", "get", "error")
		return pricing.Quote{}, false
	}

	metrics.RecordCacheOperation("redis", "get", "hit")
	return q, true
}

// Set encodes and stores a quote.
func (r *RedisCache) Set(ctx context.Context, key string, value pricing.Quote) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode quote for cache")
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Redis set failed")
		metrics.RecordCacheOperation("redis", "set", "error")
		return
	}
	metrics.RecordCacheOperation("redis", "set", "success")
}

// Invalidate deletes one key.
func (r *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Redis delete failed")
		return
	}
	metrics.RecordCacheOperation("redis", "invalidate", "success")
}

// Clear deletes every key under the cache prefix.
func (r *RedisCache) Clear(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", 500).Result()
		if err != nil {
			log.Warn().Err(err).Msg("Redis scan failed while clearing quote cache")
			return
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				log.Warn().Err(err).Msg("Redis delete failed while clearing quote cache")
				return
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	metrics.RecordCacheOperation("redis", "clear", "success")
}

// Stop closes the client.
func (r *RedisCache) Stop() {
	if err := r.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis client")
	}
}
