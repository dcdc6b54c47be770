// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/circuitbreaker"
	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	RateConfigRepo        repository.RateConfigRepositoryInterface
	QuotesRepo            repository.QuotesRepositoryInterface
	OrdersRepo            repository.OrdersRepositoryInterface
	StockRepo             repository.StockRepositoryInterface
	LoggingService        service.LoggingService
	LogWriter             *middleware.AsyncLogger
	RatesCircuitBreaker   *circuitbreaker.CircuitBreaker
	RecordsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	mongoCfg := repository.DefaultMongoConfig()
	if cfg.MaxPoolSize > 0 {
		mongoCfg.MaxPoolSize = cfg.MaxPoolSize
	}
	if cfg.MinPoolSize <= mongoCfg.MaxPoolSize {
		mongoCfg.MinPoolSize = cfg.MinPoolSize
	}

	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	ratesCB := newCircuitBreaker(cfg, "mongodb-rate-configs")
	recordsCB := newCircuitBreaker(cfg, "mongodb-records")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	return &DatabaseComponents{
		DB:                    db,
		RateConfigRepo:        repository.NewRateConfigRepositoryWithCircuitBreaker(repository.NewRateConfigRepository(db), ratesCB),
		QuotesRepo:            repository.NewQuotesRepositoryWithCircuitBreaker(repository.NewQuotesRepository(db), recordsCB),
		OrdersRepo:            repository.NewOrdersRepositoryWithCircuitBreaker(repository.NewOrdersRepository(db), recordsCB),
		StockRepo:             repository.NewStockRepositoryWithCircuitBreaker(repository.NewStockRepository(db), recordsCB),
		LoggingService:        loggingService,
		LogWriter: middleware.NewAsyncLogger(loggingService, middleware.AsyncLoggerConfig{
			BufferSize: cfg.LogBuffer,
			NumWorkers: cfg.LogWorkers,
			BatchSize:  cfg.LogBatch,
		}),
		RatesCircuitBreaker:   ratesCB,
		RecordsCircuitBreaker: recordsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// newCircuitBreaker builds a repository breaker that ignores missing
// documents and publishes its state as a gauge.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsStoreFailure,
		OnStateChange:    recordStateChange,
	})
}

func recordStateChange(name string, _, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
}
