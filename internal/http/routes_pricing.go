package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of routes mounted under a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

var _ RouteGroup = (*PricingRoutes)(nil)

// PricingRoutes handles registration of the /pricing routes.
type PricingRoutes struct {
	handler           *Handler
	rateConfigHandler *RateConfigHandler
	quoteBookHandler  *QuoteBookHandler
	stockHandler      *StockHandler
	activityHandler   *ActivityHandler
	manageRates       bool
}

// NewPricingRoutes builds the handlers cfg has dependencies for. Rate
// management needs a rate config service, the quote and order routes a
// quote book, the stock routes a stock service and the activity route a
// log store.
func NewPricingRoutes(cfg RouterConfig) *PricingRoutes {
	r := &PricingRoutes{
		handler:           NewHandler(cfg.Calculator),
		rateConfigHandler: NewRateConfigHandler(cfg.RateConfigService, cfg.Calculator),
		manageRates:       cfg.RateConfigService != nil,
	}
	if cfg.QuoteBook != nil {
		r.quoteBookHandler = NewQuoteBookHandler(cfg.QuoteBook, cfg.Calculator)
	}
	if cfg.Stock != nil {
		r.stockHandler = NewStockHandler(cfg.Stock)
	}
	if cfg.Activity != nil {
		r.activityHandler = NewActivityHandler(cfg.Activity)
	}
	return r
}

// RegisterRoutes registers the pricing routes under rg.
func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	pricing := rg.Group("/pricing")

	pricing.POST("/quote", r.handler.CalculateQuote)
	pricing.POST("/summary", r.handler.QuoteSummary)

	pricing.GET("/rates", r.rateConfigHandler.GetActiveRates)
	if r.manageRates {
		pricing.PUT("/rates", r.rateConfigHandler.UpdateRates)
		pricing.GET("/rates/history", r.rateConfigHandler.ListRates)
		pricing.POST("/rates/:version/activate", r.rateConfigHandler.ActivateRates)
	}

	if b := r.quoteBookHandler; b != nil {
		pricing.POST("/quotes", b.SaveQuote)
		pricing.GET("/quotes", b.ListQuotes)
		pricing.GET("/quotes/:ref", b.GetQuote)
		pricing.PATCH("/quotes/:ref/status", b.UpdateQuoteStatus)
		pricing.POST("/quotes/:ref/convert", b.ConvertQuote)

		pricing.POST("/orders", b.SaveOrder)
		pricing.GET("/orders", b.ListOrders)
		pricing.GET("/orders/:ref", b.GetOrder)
		pricing.PATCH("/orders/:ref/status", b.UpdateOrderStatus)

		pricing.GET("/stats", b.Stats)
	}

	if s := r.stockHandler; s != nil {
		pricing.GET("/stock", s.ListStock)
		pricing.PUT("/stock/:code", s.SaveStock)
		pricing.POST("/stock/:code/movements", s.RecordMovement)
		pricing.GET("/stock/movements", s.ListMovements)
		pricing.GET("/stock/stats", s.Stats)
		pricing.GET("/stock/alerts", s.Alerts)
	}

	if a := r.activityHandler; a != nil {
		pricing.GET("/activity", a.ListActivity)
	}
}
