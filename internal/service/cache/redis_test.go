package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedisClient struct {
	mock.Mock
}

func (m *mockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func (m *mockRedisClient) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	args := m.Called(ctx, cursor, match, count)
	return args.Get(0).(*redis.ScanCmd)
}

func (m *mockRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	args := m.Called(ctx)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockRedisClient) Close() error {
	return m.Called().Error(0)
}

func TestRedisCache_Get(t *testing.T) {
	stored := quote(70)
	encoded, err := json.Marshal(stored)
	require.NoError(t, err)

	tests := []struct {
		name          string
		reply         *redis.StringCmd
		expectedFound bool
	}{
		{name: "hit decodes quote", reply: redis.NewStringResult(string(encoded), nil), expectedFound: true},
		{name: "missing key is a miss", reply: redis.NewStringResult("", redis.Nil), expectedFound: false},
		{name: "redis error is a miss", reply: redis.NewStringResult("", errors.New("connection refused")), expectedFound: false},
		{name: "garbage is a miss", reply: redis.NewStringResult("{not json", nil), expectedFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockRedisClient)
			client.On("Get", mock.Anything, "quote:flyer|100").Return(tt.reply)
			c := NewRedisCache(client, time.Minute, "quote:")

			value, found := c.Get(context.Background(), "flyer|100")

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, stored, value)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestRedisCache_Set(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Set", mock.Anything, "quote:flyer|100", mock.MatchedBy(func(v interface{}) bool {
		var q pricing.Quote
		return json.Unmarshal(v.([]byte), &q) == nil && q.Total == 70
	}), 10*time.Minute).Return(redis.NewStatusResult("OK", nil))

	c := NewRedisCache(client, 10*time.Minute, "quote:")
	c.Set(context.Background(), "flyer|100", quote(70))

	client.AssertExpectations(t)
}

func TestRedisCache_InvalidateAndClear(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Del", mock.Anything, []string{"quote:flyer|100"}).Return(redis.NewIntResult(1, nil)).Once()
	client.On("Scan", mock.Anything, uint64(0), "quote:*", int64(500)).
		Return(redis.NewScanCmdResult([]string{"quote:a", "quote:b"}, 42, nil)).Once()
	client.On("Scan", mock.Anything, uint64(42), "quote:*", int64(500)).
		Return(redis.NewScanCmdResult([]string{"quote:c"}, 0, nil)).Once()
	client.On("Del", mock.Anything, []string{"quote:a", "quote:b"}).Return(redis.NewIntResult(2, nil)).Once()
	client.On("Del", mock.Anything, []string{"quote:c"}).Return(redis.NewIntResult(1, nil)).Once()
	client.On("Close").Return(nil)

	c := NewRedisCache(client, time.Minute, "quote:")
	c.Invalidate(context.Background(), "flyer|100")
	c.Clear(context.Background())
	c.Stop()

	client.AssertExpectations(t)
}

func TestRedisCache_Ping(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Ping", mock.Anything).Return(redis.NewStatusResult("", errors.New("down")))

	c := NewRedisCache(client, time.Minute, "quote:")
	assert.Error(t, c.Ping(context.Background()))
}
