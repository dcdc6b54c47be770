// Package app provides service initialization.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/ledger"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/guttosm/print-quote-service/internal/service/cache"
	"github.com/rs/zerolog/log"
)

const defaultCacheTTL = 5 * time.Minute

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator        *service.QuoteService
	RateConfigService service.RateConfigService
	QuoteBook         service.QuoteBook
	Stock             service.StockService
	Cache             cache.Cache
	RedisCache        *cache.RedisCache
	LedgerSyncer      *ledger.Syncer
	LedgerPuller      *ledger.Puller
	RateWatcher       *service.RateWatcher
	RateSource        string
}

// InitializeServices loads the starting rates and builds the pricing and
// record services. db may be nil, in which case only quoting is available.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{}
	components.Cache, components.RedisCache = initializeQuoteCache(cfg.Cache, cfg.Redis)

	loader := service.RateLoader{
		File:    cfg.Pricing.RatesFile,
		Timeout: cfg.Pricing.LoadTimeout,
	}
	if db != nil {
		loader.Repo = db.RateConfigRepo
	}
	rates, source := loader.LoadRates(context.Background())
	components.RateSource = source

	var opts []service.Option
	if components.Cache != nil {
		opts = append(opts, service.WithCache(components.Cache))
	}
	components.Calculator = service.NewQuoteService(rates, opts...)

	ledgerClient, syncer := initializeLedger(cfg.Ledger)
	components.LedgerSyncer = syncer

	if db != nil {
		components.RateConfigService = service.NewRateConfigService(db.RateConfigRepo, components.Calculator)
		if cfg.Pricing.RefreshInterval > 0 {
			components.RateWatcher = service.NewRateWatcher(db.RateConfigRepo, components.Calculator, cfg.Pricing.RefreshInterval)
			components.RateWatcher.Start()
		}

		var bookOpts []service.QuoteBookOption
		if components.LedgerSyncer != nil {
			bookOpts = append(bookOpts, service.WithLedger(components.LedgerSyncer))
		}
		book := service.NewQuoteBook(db.QuotesRepo, db.OrdersRepo, bookOpts...)
		components.QuoteBook = book
		if db.StockRepo != nil {
			components.Stock = service.NewStockService(db.StockRepo)
		}

		if ledgerClient != nil && cfg.Ledger.PullInterval > 0 {
			components.LedgerPuller = ledger.NewPuller(ledgerClient, book, cfg.Ledger.PullInterval)
			components.LedgerPuller.Start()
		}
	}

	return components
}

// initializeQuoteCache builds the in-process cache, the Redis cache, or both
// layered. A zero size disables the local layer and an empty address the
// shared one.
func initializeQuoteCache(local config.CacheConfig, shared config.RedisConfig) (cache.Cache, *cache.RedisCache) {
	var memory cache.Cache
	if local.Size > 0 {
		ttl := local.TTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		memory = cache.NewShardedCache(local.Size, ttl, local.Shards)
	}

	if shared.Addr == "" {
		return memory, nil
	}

	redisCache := cache.NewRedisCache(cache.NewRedisClient(shared.Addr, shared.Password, shared.DB), shared.TTL, shared.Prefix)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", shared.Addr).Msg("Redis unreachable at startup, quotes will be cached once it recovers")
	} else {
		log.Info().Str("addr", shared.Addr).Msg("Connected to Redis")
	}

	if memory == nil {
		return redisCache, redisCache
	}
	return cache.NewLayered(memory, redisCache), redisCache
}

// initializeLedger builds the ledger client and starts its sync queue.
// Both are nil when no ledger is configured or its URL is rejected.
func initializeLedger(cfg config.LedgerConfig) (*ledger.Client, *ledger.Syncer) {
	if cfg.URL == "" {
		return nil, nil
	}

	client, err := ledger.NewClient(cfg.URL,
		ledger.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		ledger.WithRetry(0, cfg.MaxElapsedTime),
	)
	if err != nil {
		log.Error().Err(err).Msg("Invalid ledger configuration - orders will not be synced")
		return nil, nil
	}

	syncCfg := ledger.DefaultSyncerConfig()
	if cfg.QueueSize > 0 {
		syncCfg.QueueSize = cfg.QueueSize
	}
	if cfg.MaxElapsedTime > 0 {
		syncCfg.PushTimeout = cfg.MaxElapsedTime + cfg.Timeout
	}

	log.Info().Int("queue_size", syncCfg.QueueSize).Msg("Ledger sync enabled")
	return client, ledger.NewSyncer(client, syncCfg)
}
