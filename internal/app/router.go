// Package app provides router configuration.
package app

import (
	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration.
// dbComponents may be nil.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var health []http.HealthOption

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys(),
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins(),
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	if services != nil {
		routerCfg.Calculator = services.Calculator
		routerCfg.RateConfigService = services.RateConfigService
		routerCfg.QuoteBook = services.QuoteBook
		if services.Stock != nil {
			routerCfg.Stock = services.Stock
		}
		if services.RedisCache != nil {
			health = append(health, http.WithChecker("redis", http.HealthCheckFunc(services.RedisCache.Ping)))
		}
	}

	if dbComponents != nil {
		if dbComponents.LogWriter != nil {
			routerCfg.LogSink = dbComponents.LogWriter
		}
		if dbComponents.LoggingService != nil {
			routerCfg.Activity = dbComponents.LoggingService
		}
		if dbComponents.DB != nil {
			health = append(health, http.WithChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck)))
		}
		health = append(health,
			http.WithBreaker(dbComponents.RatesCircuitBreaker),
			http.WithBreaker(dbComponents.RecordsCircuitBreaker),
			http.WithAdvisoryBreaker(dbComponents.LogsCircuitBreaker),
		)
	}

	return &RouterComponents{
		HealthHandler: http.NewHealthHandler(health...),
		Config:        routerCfg,
	}
}
