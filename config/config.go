// Package config provides configuration management for the print quote service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	Ledger   LedgerConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow      time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ExtraOrigins    []string      `env:"CORS_ORIGINS" envSeparator:","`
	SwaggerUser     string        `env:"SWAGGER_USER"`
	SwaggerPass     string        `env:"SWAGGER_PASS"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// CacheConfig holds the in-process quote cache configuration.
type CacheConfig struct {
	Size   int           `env:"CACHE_SIZE" envDefault:"1000"`
	TTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	Shards int           `env:"CACHE_SHARDS" envDefault:"16"`
}

// RedisConfig holds the shared quote cache configuration. An empty address
// keeps quotes cached in process only.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
	Prefix   string        `env:"REDIS_PREFIX" envDefault:"quote:"`
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool     `env:"AUTH_ENABLED" envDefault:"false"`
	Keys    []string `env:"API_KEYS" envSeparator:","`
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string        `env:"MONGODB_DATABASE" envDefault:"print_quotes"`
	LogsTTL      time.Duration `env:"MONGODB_LOGS_TTL" envDefault:"720h"`
	Enabled      bool          `env:"MONGODB_ENABLED" envDefault:"false"`
	MaxPoolSize  uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"50"`
	MinPoolSize  uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"5"`
	// Request and audit log writer
	LogBuffer  int `env:"MONGODB_LOG_BUFFER" envDefault:"1000"`
	LogWorkers int `env:"MONGODB_LOG_WORKERS" envDefault:"4"`
	LogBatch   int `env:"MONGODB_LOG_BATCH" envDefault:"50"`
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int           `env:"CIRCUIT_BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	CircuitBreakerSuccessThreshold int           `env:"CIRCUIT_BREAKER_SUCCESS_THRESHOLD" envDefault:"2"`
	CircuitBreakerTimeout          time.Duration `env:"CIRCUIT_BREAKER_TIMEOUT" envDefault:"30s"`
}

// PricingConfig points at the rate document used to seed the engine.
type PricingConfig struct {
	RatesFile   string        `env:"PRICING_RATES_FILE"`
	LoadTimeout time.Duration `env:"PRICING_LOAD_TIMEOUT" envDefault:"5s"`
	// RefreshInterval is how often the active stored rates are compared with
	// the running ones. Zero disables the check.
	RefreshInterval time.Duration `env:"PRICING_REFRESH_INTERVAL" envDefault:"30s"`
}

// LedgerConfig holds the remote order ledger endpoint. Sync is disabled
// when the URL is empty.
type LedgerConfig struct {
	URL            string        `env:"LEDGER_URL"`
	Timeout        time.Duration `env:"LEDGER_TIMEOUT" envDefault:"10s"`
	MaxElapsedTime time.Duration `env:"LEDGER_MAX_ELAPSED" envDefault:"1m"`
	QueueSize      int           `env:"LEDGER_QUEUE_SIZE" envDefault:"256"`
	PullInterval   time.Duration `env:"LEDGER_PULL_INTERVAL" envDefault:"5s"`
}

// defaultOrigins are always allowed for local development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// Load creates a Config from environment variables and rejects settings
// the service cannot start with.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Auth.Enabled && len(c.Auth.APIKeys()) == 0 {
		errs = append(errs, errors.New("AUTH_ENABLED requires at least one API key"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT must not be negative"))
	}
	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		errs = append(errs, errors.New("RATE_WINDOW must be positive when RATE_LIMIT is set"))
	}
	if c.Database.MinPoolSize > c.Database.MaxPoolSize {
		errs = append(errs, fmt.Errorf("MONGODB_MIN_POOL_SIZE %d exceeds MONGODB_MAX_POOL_SIZE %d",
			c.Database.MinPoolSize, c.Database.MaxPoolSize))
	}
	return errors.Join(errs...)
}

// CORSOrigins returns the development origins followed by the configured ones.
func (s ServerConfig) CORSOrigins() []string {
	result := make([]string, 0, len(defaultOrigins)+len(s.ExtraOrigins))
	result = append(result, defaultOrigins...)
	for _, o := range s.ExtraOrigins {
		if origin := strings.TrimSpace(o); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

// APIKeys returns the configured keys as a lookup set, or nil when none are set.
func (a AuthConfig) APIKeys() map[string]bool {
	if len(a.Keys) == 0 {
		return nil
	}
	result := make(map[string]bool, len(a.Keys))
	for _, k := range a.Keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
