package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/guttosm/print-quote-service/internal/service"
)

// QuoteBookHandler provides HTTP handlers for saved quotes and orders.
type QuoteBookHandler struct {
	book       service.QuoteBook
	calculator service.QuoteCalculator
}

// NewQuoteBookHandler creates a new QuoteBookHandler instance.
func NewQuoteBookHandler(book service.QuoteBook, calculator service.QuoteCalculator) *QuoteBookHandler {
	return &QuoteBookHandler{
		book:       book,
		calculator: calculator,
	}
}

// price runs the optional pricing request of a save call. It returns false
// after answering the request when the job cannot be priced.
func (h *QuoteBookHandler) price(c *gin.Context, builder *ResponseBuilder, req *dto.CalculateQuoteRequest) (*pricing.Quote, bool) {
	if req == nil {
		return nil, true
	}
	q, err := h.calculator.Calculate(c.Request.Context(), toQuoteRequest(req))
	if err != nil {
		respondPricingError(builder, err)
		return nil, false
	}
	return q, true
}

// SaveQuote handles POST /api/pricing/quotes requests.
//
// @Summary      Save a quote
// @Description  Saves a quote in the quote book. With a pricing request the server prices the job and fills the price and description; otherwise product, quantity and price are taken as given. Saving an existing ref replaces it.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SaveQuoteRequest true "Quote"
// @Success      201 {object} dto.SuccessResponse{data=model.QuoteRecord} "Saved quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "The active rates have no table for the product"
// @Failure      503 {object} dto.ErrorResponse "Quote book unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quotes [post]
func (h *QuoteBookHandler) SaveQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.SaveQuoteRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	quote, ok := h.price(c, builder, req.Pricing)
	if !ok {
		return
	}

	record, err := h.book.SaveQuote(c.Request.Context(), &model.QuoteRecord{
		Ref:         req.Ref,
		Client:      req.Client,
		Salesperson: req.Salesperson,
		Status:      req.Status,
		Product:     pricing.ParseProductType(req.Product),
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
		Quote:       quote,
	})
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionSaveQuote, "Quote saved", map[string]interface{}{
		"ref":   record.Ref,
		"price": record.Price,
	})

	builder.SuccessCreated(record)
}

// ListQuotes handles GET /api/pricing/quotes requests.
//
// @Summary      List quotes
// @Description  Returns the most recently saved quotes, newest first
// @Tags         Quotes
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse{data=[]model.QuoteRecord} "Quotes"
// @Failure      503 {object} dto.ErrorResponse "Quote book unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quotes [get]
func (h *QuoteBookHandler) ListQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quotes, err := h.book.ListQuotes(c.Request.Context(), queryLimit(c))
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	if quotes == nil {
		quotes = []model.QuoteRecord{}
	}
	builder.SuccessOK(quotes)
}

// GetQuote handles GET /api/pricing/quotes/{ref} requests.
//
// @Summary      Get a quote
// @Tags         Quotes
// @Produce      json
// @Param        ref path string true "Quote reference"
// @Success      200 {object} dto.SuccessResponse{data=model.QuoteRecord} "Quote"
// @Failure      404 {object} dto.ErrorResponse "Quote not found"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quotes/{ref} [get]
func (h *QuoteBookHandler) GetQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quote, err := h.book.GetQuote(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(quote)
}

// UpdateQuoteStatus handles PATCH /api/pricing/quotes/{ref}/status requests.
//
// @Summary      Change a quote status
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        ref path string true "Quote reference"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse{data=model.QuoteRecord} "Updated quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Quote not found"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quotes/{ref}/status [patch]
func (h *QuoteBookHandler) UpdateQuoteStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.UpdateStatusRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	quote, err := h.book.UpdateQuoteStatus(c.Request.Context(), c.Param("ref"), req.Status)
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionUpdateQuote, "Quote status changed", map[string]interface{}{
		"ref":    quote.Ref,
		"status": quote.Status,
	})

	builder.SuccessOK(quote)
}

// ConvertQuote handles POST /api/pricing/quotes/{ref}/convert requests.
//
// @Summary      Convert a quote to an order
// @Description  Creates a pending, unpaid order from the quote and marks the quote as converted.
// @Tags         Quotes
// @Produce      json
// @Param        ref path string true "Quote reference"
// @Success      201 {object} dto.SuccessResponse{data=model.OrderRecord} "Created order"
// @Failure      404 {object} dto.ErrorResponse "Quote not found"
// @Failure      503 {object} dto.ErrorResponse "Quote book unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quotes/{ref}/convert [post]
func (h *QuoteBookHandler) ConvertQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.book.ConvertToOrder(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionConvertQuote, "Quote converted to order", map[string]interface{}{
		"quote_ref": order.ConvertedFrom,
		"order_ref": order.Ref,
	})

	builder.SuccessCreated(order)
}

// SaveOrder handles POST /api/pricing/orders requests.
//
// @Summary      Save an order
// @Description  Saves an order and queues it for the remote ledger. Missing statuses default to pending and unpaid.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SaveOrderRequest true "Order"
// @Success      201 {object} dto.SuccessResponse{data=model.OrderRecord} "Saved order"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      503 {object} dto.ErrorResponse "Order book unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/orders [post]
func (h *QuoteBookHandler) SaveOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.SaveOrderRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	quote, ok := h.price(c, builder, req.Pricing)
	if !ok {
		return
	}

	order, err := h.book.SaveOrder(c.Request.Context(), &model.OrderRecord{
		Ref:              req.Ref,
		Client:           req.Client,
		Salesperson:      req.Salesperson,
		Product:          pricing.ParseProductType(req.Product),
		Quantity:         req.Quantity,
		Price:            req.Price,
		Description:      req.Description,
		ProductionStatus: req.ProductionStatus,
		AccountingStatus: req.AccountingStatus,
		Quote:            quote,
	})
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionSaveOrder, "Order saved", map[string]interface{}{
		"ref":   order.Ref,
		"price": order.Price,
	})

	builder.SuccessCreated(order)
}

// ListOrders handles GET /api/pricing/orders requests.
//
// @Summary      List orders
// @Description  Returns orders newest first, optionally narrowed to one production or accounting status.
// @Tags         Orders
// @Produce      json
// @Param        kind query string false "Status kind: prod or compta"
// @Param        status query string false "Status value to match"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse{data=[]model.OrderRecord} "Orders"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown status kind"
// @Failure      503 {object} dto.ErrorResponse "Order book unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/orders [get]
func (h *QuoteBookHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	kind, ok := model.ParseStatusKind(c.Query("kind"))
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationStatusKind, nil)
		return
	}

	orders, err := h.book.ListOrders(c.Request.Context(), repository.OrderFilter{
		Kind:   kind,
		Status: c.Query("status"),
		Limit:  queryLimit(c),
	})
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	if orders == nil {
		orders = []model.OrderRecord{}
	}
	builder.SuccessOK(orders)
}

// GetOrder handles GET /api/pricing/orders/{ref} requests.
//
// @Summary      Get an order
// @Tags         Orders
// @Produce      json
// @Param        ref path string true "Order reference"
// @Success      200 {object} dto.SuccessResponse{data=model.OrderRecord} "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Security     ApiKeyAuth
// @Router       /api/pricing/orders/{ref} [get]
func (h *QuoteBookHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.book.GetOrder(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(order)
}

// UpdateOrderStatus handles PATCH /api/pricing/orders/{ref}/status requests.
//
// @Summary      Change an order status
// @Description  Sets the production (kind=prod) or accounting (kind=compta) status and queues the order for the remote ledger.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        ref path string true "Order reference"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse{data=model.OrderRecord} "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Security     ApiKeyAuth
// @Router       /api/pricing/orders/{ref}/status [patch]
func (h *QuoteBookHandler) UpdateOrderStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.UpdateStatusRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	kind, ok := model.ParseStatusKind(req.Kind)
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationStatusKind, nil)
		return
	}

	order, err := h.book.UpdateOrderStatus(c.Request.Context(), c.Param("ref"), kind, req.Status)
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionUpdateOrder, "Order status changed", map[string]interface{}{
		"ref":    order.Ref,
		"kind":   string(kind),
		"status": order.Status(kind),
	})

	builder.SuccessOK(order)
}

// Stats handles GET /api/pricing/stats requests.
//
// @Summary      Order statistics
// @Description  Revenue over all orders, today and this month, the production queue and today's completed orders.
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.OrderStats} "Statistics"
// @Failure      503 {object} dto.ErrorResponse "Order book unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/stats [get]
func (h *QuoteBookHandler) Stats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.book.Stats(c.Request.Context())
	if err != nil {
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(stats)
}
