// Package metrics registers the Prometheus collectors of the print quote
// service and the helpers that feed them.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "print_quote"

// Quote outcomes used as the status label of QuotesTotal.
const (
	QuoteSuccess = "success"
	QuoteCached  = "cached"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status_code"})

	HTTPRequestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status_code"})

	PanicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "panics_total",
		Help:      "Handler panics caught by the recovery middleware.",
	}, []string{"route"})

	// QuotesTotal counts pricing calls by product and outcome, failures
	// labelled with their kind.
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Quote calculations by product and outcome.",
	}, []string{"product", "status"})

	QuoteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_duration_seconds",
		Help:      "Time spent pricing a quote.",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	// QuoteAmount starts its buckets at the 28 DT minimum price.
	QuoteAmount = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_amount",
		Help:      "Quoted totals in DT.",
		Buckets:   []float64{28, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"product"})

	CacheOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "operations_total",
		Help:      "Quote cache operations by backend and result.",
	}, []string{"backend", "operation", "result"})

	CacheEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Entries held by the in-process quote cache, and its capacity.",
	}, []string{"kind"})

	LedgerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "sync_total",
		Help:      "Order pushes to the remote ledger by result.",
	}, []string{"result"})

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state: 0 closed, 1 open, 2 half-open.",
	}, []string{"name"})

	RateConfigVersion = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rate_config_version",
		Help:      "Version of the active rates, 0 when they come from the rate file or the defaults.",
	})
)

// PrometheusMiddleware counts and times every request under its route
// template, or its raw path for unmatched requests.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method":      c.Request.Method,
			"route":       route,
			"status_code": strconv.Itoa(c.Writer.Status()),
		}
		HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.With(labels).Inc()
	}
}

// RecordQuote records one pricing call. The amount only counts for priced
// quotes, cached or not.
func RecordQuote(elapsed time.Duration, product, status string, total float64) {
	QuoteDuration.Observe(elapsed.Seconds())
	QuotesTotal.WithLabelValues(product, status).Inc()
	if status == QuoteSuccess || status == QuoteCached {
		QuoteAmount.WithLabelValues(product).Observe(total)
	}
}

func RecordCacheOperation(backend, operation, result string) {
	CacheOperationsTotal.WithLabelValues(backend, operation, result).Inc()
}

// UpdateCacheMetrics publishes the in-process cache fill.
func UpdateCacheMetrics(size, capacity int) {
	CacheEntries.WithLabelValues("size").Set(float64(size))
	CacheEntries.WithLabelValues("capacity").Set(float64(capacity))
}

func RecordLedgerSync(result string) {
	LedgerSyncTotal.WithLabelValues(result).Inc()
}

func SetRateConfigVersion(version int) {
	RateConfigVersion.Set(float64(version))
}

func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

func RecordPanic(route string) {
	PanicsTotal.WithLabelValues(route).Inc()
}
