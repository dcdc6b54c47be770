package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/mocks"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/stretchr/testify/assert"
)

// routeDeps selects which optional dependencies a test router has.
type routeDeps struct {
	rates, book, stock, activity bool
}

func (d routeDeps) config(t *testing.T) RouterConfig {
	calc := service.NewQuoteService(testRates())
	cfg := RouterConfig{Calculator: calc}
	if d.rates {
		cfg.RateConfigService = service.NewRateConfigService(nil, calc)
	}
	if d.book {
		cfg.QuoteBook = service.NewQuoteBook(nil, nil)
	}
	if d.stock {
		cfg.Stock = service.NewStockService(nil)
	}
	if d.activity {
		cfg.Activity = mocks.NewMockLoggingService(t)
	}
	return cfg
}

// TestNewPricingRoutes tests which handlers are built for each dependency set.
func TestNewPricingRoutes(t *testing.T) {
	full := NewPricingRoutes(routeDeps{rates: true, book: true, stock: true, activity: true}.config(t))
	assert.NotNil(t, full.quoteBookHandler)
	assert.NotNil(t, full.stockHandler)
	assert.NotNil(t, full.activityHandler)
	assert.True(t, full.manageRates)

	bare := NewPricingRoutes(routeDeps{}.config(t))
	assert.NotNil(t, bare.handler)
	assert.NotNil(t, bare.rateConfigHandler)
	assert.Nil(t, bare.quoteBookHandler)
	assert.Nil(t, bare.stockHandler)
	assert.Nil(t, bare.activityHandler)
	assert.False(t, bare.manageRates)
}

// TestPricingRoutes_RegisterRoutes tests that optional routes follow their dependencies.
func TestPricingRoutes_RegisterRoutes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		needs  routeDeps
	}{
		{method: http.MethodPost, path: "/api/pricing/quote"},
		{method: http.MethodPost, path: "/api/pricing/summary"},
		{method: http.MethodGet, path: "/api/pricing/rates"},
		{method: http.MethodPut, path: "/api/pricing/rates", needs: routeDeps{rates: true}},
		{method: http.MethodGet, path: "/api/pricing/rates/history", needs: routeDeps{rates: true}},
		{method: http.MethodPost, path: "/api/pricing/rates/1/activate", needs: routeDeps{rates: true}},
		{method: http.MethodGet, path: "/api/pricing/quotes", needs: routeDeps{book: true}},
		{method: http.MethodPost, path: "/api/pricing/quotes/Q-1/convert", needs: routeDeps{book: true}},
		{method: http.MethodGet, path: "/api/pricing/orders", needs: routeDeps{book: true}},
		{method: http.MethodPatch, path: "/api/pricing/orders/D-1/status", needs: routeDeps{book: true}},
		{method: http.MethodGet, path: "/api/pricing/stats", needs: routeDeps{book: true}},
		{method: http.MethodGet, path: "/api/pricing/stock", needs: routeDeps{stock: true}},
		{method: http.MethodPut, path: "/api/pricing/stock/offset-80", needs: routeDeps{stock: true}},
		{method: http.MethodPost, path: "/api/pricing/stock/offset-80/movements", needs: routeDeps{stock: true}},
		{method: http.MethodGet, path: "/api/pricing/stock/movements", needs: routeDeps{stock: true}},
		{method: http.MethodGet, path: "/api/pricing/stock/stats", needs: routeDeps{stock: true}},
		{method: http.MethodGet, path: "/api/pricing/stock/alerts", needs: routeDeps{stock: true}},
		{method: http.MethodGet, path: "/api/pricing/activity?since=yesterday", needs: routeDeps{activity: true}},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			serve := func(deps routeDeps) int {
				router := gin.New()
				NewPricingRoutes(deps.config(t)).RegisterRoutes(router.Group("/api"))
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
				return w.Code
			}

			assert.NotEqual(t, http.StatusNotFound, serve(tt.needs), "registered with its dependency")
			if tt.needs != (routeDeps{}) {
				assert.Equal(t, http.StatusNotFound, serve(routeDeps{}), "missing without it")
			}
		})
	}
}

// TestPricingRoutes_StoreNotConfigured tests that book routes without repositories report 503.
func TestPricingRoutes_StoreNotConfigured(t *testing.T) {
	router := gin.New()
	NewPricingRoutes(routeDeps{rates: true, book: true, stock: true}.config(t)).RegisterRoutes(router.Group("/api"))

	for _, path := range []string{
		"/api/pricing/quotes", "/api/pricing/orders", "/api/pricing/stats", "/api/pricing/rates/history",
		"/api/pricing/stock", "/api/pricing/stock/stats", "/api/pricing/stock/alerts", "/api/pricing/stock/movements",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}
