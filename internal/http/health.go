package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/circuitbreaker"
)

// readinessTimeout bounds each dependency check of the readiness check.
const readinessTimeout = 2 * time.Second

// HealthChecker is a dependency the readiness check pings.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

type watchedBreaker struct {
	cb       *circuitbreaker.CircuitBreaker
	advisory bool
}

// HealthHandler serves the liveness and readiness checks.
type HealthHandler struct {
	checkers map[string]HealthChecker
	breakers []watchedBreaker
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithChecker adds a dependency whose failure makes the service unready.
func WithChecker(name string, checker HealthChecker) HealthOption {
	return func(h *HealthHandler) {
		if checker != nil {
			h.checkers[name] = checker
		}
	}
}

// WithBreaker reports cb under its name. An open circuit makes the service
// unready.
func WithBreaker(cb *circuitbreaker.CircuitBreaker) HealthOption {
	return func(h *HealthHandler) {
		if cb != nil {
			h.breakers = append(h.breakers, watchedBreaker{cb: cb})
		}
	}
}

// WithAdvisoryBreaker reports cb without letting it affect readiness, for
// stores the service can run without such as the request log.
func WithAdvisoryBreaker(cb *circuitbreaker.CircuitBreaker) HealthOption {
	return func(h *HealthHandler) {
		if cb != nil {
			h.breakers = append(h.breakers, watchedBreaker{cb: cb, advisory: true})
		}
	}
}

// NewHealthHandler creates a HealthHandler. Nil breakers and checkers are
// skipped by the options that receive them.
func NewHealthHandler(opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{checkers: make(map[string]HealthChecker)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// ReadinessReport is the readiness check body.
type ReadinessReport struct {
	Status   string                          `json:"status" example:"ok"`
	Checks   map[string]string               `json:"checks"`
	Circuits map[string]circuitbreaker.Stats `json:"circuits,omitempty"`
}

// Liveness handles the liveness endpoint.
// @Summary     Liveness check
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness check endpoint.
// @Summary     Readiness check
// @Description Pings MongoDB and Redis when configured and reports the repository circuit breakers. Any failed check or open circuit on a required store answers 503.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessReport "Service is ready"
// @Failure     503 {object} ReadinessReport "A dependency is down"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	report := ReadinessReport{Status: "ok", Checks: h.runChecks(c.Request.Context())}
	for _, result := range report.Checks {
		if result != "ok" {
			report.Status = "degraded"
		}
	}

	if len(h.breakers) > 0 {
		report.Circuits = make(map[string]circuitbreaker.Stats, len(h.breakers))
		for _, b := range h.breakers {
			stats := b.cb.Snapshot()
			report.Circuits[b.cb.Name()] = stats
			if !stats.Healthy() && !b.advisory {
				report.Status = "degraded"
			}
		}
	}

	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// runChecks pings every dependency concurrently.
func (h *HealthHandler) runChecks(ctx context.Context) map[string]string {
	results := make(map[string]string, len(h.checkers))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
			defer cancel()

			result := "ok"
			if err := checker.Check(checkCtx); err != nil {
				result = err.Error()
			}
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()
	return results
}
