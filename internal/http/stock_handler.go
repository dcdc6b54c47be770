package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/service"
)

// StockHandler provides HTTP handlers for the paper stock.
type StockHandler struct {
	stock service.StockService
}

// NewStockHandler creates a new StockHandler instance.
func NewStockHandler(stock service.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// ListStock handles GET /api/pricing/stock requests.
//
// @Summary      List paper stock
// @Description  Returns every paper in stock ordered by code
// @Tags         Stock
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.PaperStock} "Papers"
// @Failure      503 {object} dto.ErrorResponse "Stock unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stock [get]
func (h *StockHandler) ListStock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	papers, err := h.stock.List(c.Request.Context())
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(papers)
}

// SaveStock handles PUT /api/pricing/stock/{code} requests.
//
// @Summary      Set a paper's stock
// @Description  Creates or replaces the stock of the paper with the given code.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Param        code path string true "Paper code"
// @Param        request body dto.SaveStockRequest true "Paper stock"
// @Success      200 {object} dto.SuccessResponse{data=model.PaperStock} "Saved paper"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      503 {object} dto.ErrorResponse "Stock unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stock/{code} [put]
func (h *StockHandler) SaveStock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.SaveStockRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	paper, err := h.stock.Save(c.Request.Context(), &model.PaperStock{
		Code:      c.Param("code"),
		Name:      req.Name,
		Qty:       req.Qty,
		Threshold: req.Threshold,
		Price:     req.Price,
	})
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionSaveStock, "Paper stock set", map[string]interface{}{
		"code": paper.Code,
		"qty":  paper.Qty,
	})

	builder.SuccessOK(paper)
}

// RecordMovement handles POST /api/pricing/stock/{code}/movements requests.
//
// @Summary      Record a stock movement
// @Description  Adds a delivery (positive delta) or takes sheets out (negative delta). A withdrawal larger than the stock is refused.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Param        code path string true "Paper code"
// @Param        request body dto.StockMovementRequest true "Movement"
// @Success      201 {object} dto.SuccessResponse{data=model.PaperStock} "Paper after the movement"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Paper not found"
// @Failure      409 {object} dto.ErrorResponse "Not enough sheets in stock"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stock/{code}/movements [post]
func (h *StockHandler) RecordMovement(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.StockMovementRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	paper, err := h.stock.RecordMovement(c.Request.Context(), &model.StockMovement{
		Code:   c.Param("code"),
		Delta:  req.Delta,
		Reason: req.Reason,
		Actor:  middleware.GetActor(c),
	})
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionStockMovement, "Stock movement recorded", map[string]interface{}{
		"code":  paper.Code,
		"delta": req.Delta,
		"qty":   paper.Qty,
	})

	builder.SuccessCreated(paper)
}

// ListMovements handles GET /api/pricing/stock/movements requests.
//
// @Summary      List stock movements
// @Description  Returns stock movements newest first, optionally for one paper.
// @Tags         Stock
// @Produce      json
// @Param        code query string false "Paper code"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse{data=[]model.StockMovement} "Movements"
// @Failure      503 {object} dto.ErrorResponse "Stock unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stock/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	builder := NewResponseBuilder(c)

	movements, err := h.stock.Movements(c.Request.Context(), c.Query("code"), queryLimit(c))
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(movements)
}

// Stats handles GET /api/pricing/stock/stats requests.
//
// @Summary      Stock statistics
// @Description  Number of papers, sheets in stock, stock value and number of alerts.
// @Tags         Stock
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.StockStats} "Statistics"
// @Failure      503 {object} dto.ErrorResponse "Stock unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stock/stats [get]
func (h *StockHandler) Stats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.stock.Stats(c.Request.Context())
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(stats)
}

// Alerts handles GET /api/pricing/stock/alerts requests.
//
// @Summary      Low stock alerts
// @Description  Papers whose quantity is at or below their alert threshold.
// @Tags         Stock
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.PaperStock} "Papers to reorder"
// @Failure      503 {object} dto.ErrorResponse "Stock unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stock/alerts [get]
func (h *StockHandler) Alerts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	alerts, err := h.stock.Alerts(c.Request.Context())
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(alerts)
}
