package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/circuitbreaker"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/guttosm/print-quote-service/internal/service"
)

// logSinkKey is the context key the router stores the audit log sink under.
const logSinkKey = "log_sink"

// Handler provides HTTP handlers for the pricing routes.
type Handler struct {
	calculator service.QuoteCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.QuoteCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// CalculateQuote handles POST /api/pricing/quote requests.
//
// @Summary      Price a print job
// @Description  Prices a product for a quantity with its options and an optional design service, and returns the itemized quote with its job ticket text. Supports idempotency via Idempotency-Key header.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateQuoteRequest true "Print job"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Priced quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity or unknown product"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      422 {object} dto.ErrorResponse "The active rates have no table for the product"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/pricing/quote [post]
func (h *Handler) CalculateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.CalculateQuoteRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	summary, quote, err := h.calculator.Summary(c.Request.Context(), toQuoteRequest(req))
	if err != nil {
		respondPricingError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionCalculateQuote, "Quote calculated", map[string]interface{}{
		"product":  string(quote.ProductType),
		"quantity": quote.Quantity,
		"total":    quote.Total,
	})

	builder.SuccessOK(dto.NewQuoteResponse(quote, summary))
}

// QuoteSummary handles POST /api/pricing/summary requests.
//
// @Summary      Render the job ticket of a print job
// @Description  Returns the multi-line configuration text of a quote, or "Configuration non disponible" when the job cannot be priced.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateQuoteRequest true "Print job"
// @Success      200 {object} dto.SuccessResponse{data=dto.SummaryResponse} "Job ticket text"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid request body"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/pricing/summary [post]
func (h *Handler) QuoteSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindRequest[dto.CalculateQuoteRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	// the unavailable marker is the answer for a job that cannot be priced
	summary, _, _ := h.calculator.Summary(c.Request.Context(), toQuoteRequest(req))
	builder.SuccessOK(dto.SummaryResponse{Summary: summary})
}

func toQuoteRequest(req *dto.CalculateQuoteRequest) service.QuoteRequest {
	product, opts, design := req.Resolve()
	return service.QuoteRequest{
		Product:  product,
		Options:  opts,
		Quantity: req.Quantity,
		Design:   design,
	}
}

func logSinkFrom(c *gin.Context) middleware.LogSink {
	if v, ok := c.Get(logSinkKey); ok {
		if sink, ok := v.(middleware.LogSink); ok {
			return sink
		}
	}
	return nil
}

// respondBindError answers a request whose body could not be decoded or validated.
func respondBindError(b *ResponseBuilder, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		b.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var vErr *dto.ValidationError
	if !errors.As(err, &vErr) {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	key := i18n.ErrKeyInvalidRequest
	switch vErr.Field {
	case "product":
		key = i18n.ErrKeyValidationProduct
	case "client":
		key = i18n.ErrKeyValidationClient
	case "status":
		key = i18n.ErrKeyValidationStatus
	case "delta":
		key = i18n.ErrKeyValidationDelta
	}
	b.Error(http.StatusBadRequest, key, err)
}

// respondPricingError maps an engine failure to its status and message.
func respondPricingError(b *ResponseBuilder, err error) {
	var details map[string]string
	var f *pricing.Failure
	if errors.As(err, &f) {
		details = map[string]string{"product": string(f.Product)}
		if f.Message != "" {
			details["reason"] = f.Message
		}
	}

	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity):
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidQuantity, details, err)
	case errors.Is(err, pricing.ErrUnknownProduct):
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyUnknownProduct, details, err)
	case errors.Is(err, pricing.ErrMissingRateTable):
		b.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyMissingRateTable, details, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.ErrorWithDetails(http.StatusInternalServerError, i18n.ErrKeyCalculation, details, err)
	}
}

// respondStoreError maps a quote book or rate store error to its status.
func respondStoreError(b *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, repository.ErrInsufficientStock):
		b.Error(http.StatusConflict, i18n.ErrKeyInsufficientStock, err)
	case errors.Is(err, service.ErrInvalidRecord):
		b.Error(http.StatusBadRequest, i18n.ErrKeyValidationRecord, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// queryLimit reads the limit query parameter, returning 0 for a missing or
// invalid value.
func queryLimit(c *gin.Context) int {
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		return l
	}
	return 0
}
