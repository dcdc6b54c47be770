package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv applies vars for the duration of the test.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// TestLoad_Defaults tests the configuration of a bare environment.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ServerConfig{
		Port:            "8080",
		RateLimit:       100,
		RateWindow:      time.Minute,
		RequestTimeout:  10 * time.Second,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}, cfg.Server)
	assert.Equal(t, CacheConfig{Size: 1000, TTL: 5 * time.Minute, Shards: 16}, cfg.Cache)
	assert.Equal(t, "quote:", cfg.Redis.Prefix)
	assert.Empty(t, cfg.Redis.Addr)

	db := cfg.Database
	assert.False(t, db.Enabled)
	assert.Equal(t, "print_quotes", db.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, db.LogsTTL)
	assert.Equal(t, []uint64{50, 5}, []uint64{db.MaxPoolSize, db.MinPoolSize})
	assert.Equal(t, []int{1000, 4, 50}, []int{db.LogBuffer, db.LogWorkers, db.LogBatch})
	assert.Equal(t, 5, db.CircuitBreakerFailureThreshold)

	assert.Equal(t, 5*time.Second, cfg.Pricing.LoadTimeout)
	assert.Empty(t, cfg.Ledger.URL)
	assert.Equal(t, 256, cfg.Ledger.QueueSize)
	assert.Equal(t, 5*time.Second, cfg.Ledger.PullInterval)
	assert.Equal(t, 30*time.Second, cfg.Pricing.RefreshInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Auth.APIKeys())
}

// TestLoad_Environment tests that variables override defaults.
func TestLoad_Environment(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":                  "9090",
		"RATE_LIMIT":            "50",
		"RATE_WINDOW":           "30s",
		"CACHE_TTL":             "10m",
		"AUTH_ENABLED":          "true",
		"API_KEYS":              " front-desk , atelier ,",
		"REDIS_ADDR":            "redis:6379",
		"MONGODB_MAX_POOL_SIZE": "20",
		"MONGODB_MIN_POOL_SIZE": "20",
		"PRICING_RATES_FILE":    "/etc/quotes/prix_config.json",
		"LEDGER_URL":            "https://ledger.example.com/orders",
		"CORS_ORIGINS":          "https://atelier.example.com, ",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, map[string]bool{"front-desk": true, "atelier": true}, cfg.Auth.APIKeys())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, uint64(20), cfg.Database.MinPoolSize)
	assert.Equal(t, "/etc/quotes/prix_config.json", cfg.Pricing.RatesFile)
	assert.Equal(t, "https://ledger.example.com/orders", cfg.Ledger.URL)
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"https://atelier.example.com",
	}, cfg.Server.CORSOrigins())
}

// TestLoad_Rejects tests settings the service refuses to start with.
func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unparsable number", env: map[string]string{"RATE_LIMIT": "lots"}, want: "failed to parse config"},
		{name: "auth without keys", env: map[string]string{"AUTH_ENABLED": "true", "API_KEYS": " , "}, want: "API key"},
		{name: "negative rate limit", env: map[string]string{"RATE_LIMIT": "-1"}, want: "RATE_LIMIT"},
		{name: "empty rate window", env: map[string]string{"RATE_WINDOW": "0s"}, want: "RATE_WINDOW"},
		{
			name: "pool floor above ceiling",
			env:  map[string]string{"MONGODB_MAX_POOL_SIZE": "4", "MONGODB_MIN_POOL_SIZE": "8"},
			want: "MONGODB_MIN_POOL_SIZE 8 exceeds MONGODB_MAX_POOL_SIZE 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_RateLimitOffIgnoresWindow(t *testing.T) {
	setEnv(t, map[string]string{"RATE_LIMIT": "0", "RATE_WINDOW": "0s"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Server.RateLimit)
}
