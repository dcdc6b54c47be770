package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options. Only Calculator is
// required for the pricing routes; the other services add their routes
// when set.
type RouterConfig struct {
	// Limits and timeouts. RateLimit 0 disables limiting.
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration

	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool

	CORSOrigins []string
	// SwaggerUser and SwaggerPass put the docs behind basic auth when both are set.
	SwaggerUser string
	SwaggerPass string

	LogSink           middleware.LogSink
	Calculator        service.QuoteCalculator
	RateConfigService service.RateConfigService
	QuoteBook         service.QuoteBook
	Stock             service.StockService
	Activity          service.LoggingService
}

// DefaultRouterConfig limits each client to 100 requests a minute with
// authentication off.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{RateLimit: 100, RateWindow: time.Minute}
}

var devOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// NewRouter creates the engine serving the health checks, metrics, docs and the
// /api/pricing routes.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(globalMiddleware(&cfg)...)

	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", swaggerHandlers(&cfg)...)

	api := router.Group("/api", apiMiddleware(&cfg)...)
	if cfg.Calculator != nil {
		NewPricingRoutes(cfg).RegisterRoutes(api)
	}
	return router
}

func authEnabled(cfg *RouterConfig) bool {
	return cfg.EnableAuth && len(cfg.APIKeys) > 0
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = devOrigins
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language",
			"Cache-Control", "X-Requested-With", middleware.APIKeyHeader, "Idempotency-Key", "X-Request-ID",
		},
		ExposeHeaders: []string{
			"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset",
			"Retry-After", "X-Idempotency-Replayed", "Location",
		},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
}

// globalMiddleware runs on every route, health checks included.
func globalMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{
		cors.New(corsConfig(cfg.CORSOrigins)),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LogSink),
		middleware.ErrorHandler(),
	}
	if sink := cfg.LogSink; sink != nil {
		chain = append(chain, func(c *gin.Context) {
			c.Set(logSinkKey, sink)
			c.Next()
		})
	}
	// with API keys the api group limits per key instead
	if cfg.RateLimit > 0 && !authEnabled(cfg) {
		chain = append(chain, middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).RateLimit())
	}
	return chain
}

// apiMiddleware runs on /api only.
func apiMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.RequestTimeout))
	}
	if authEnabled(cfg) {
		chain = append(chain, middleware.APIKeyAuth(cfg.APIKeys))
		if cfg.RateLimit > 0 {
			chain = append(chain, middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).KeyRateLimit())
		}
	}
	// after auth so replayed responses are scoped to the caller
	if cfg.EnableIdempotency {
		chain = append(chain, middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	return chain
}

func swaggerHandlers(cfg *RouterConfig) []gin.HandlerFunc {
	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if cfg.SwaggerUser == "" || cfg.SwaggerPass == "" {
		return []gin.HandlerFunc{docs}
	}
	return []gin.HandlerFunc{gin.BasicAuth(gin.Accounts{cfg.SwaggerUser: cfg.SwaggerPass}), docs}
}
