package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/guttosm/print-quote-service/internal/service"
)

// RateConfigHandler provides HTTP handlers for the rate configuration routes.
type RateConfigHandler struct {
	rateConfigService service.RateConfigService
	calculator        service.QuoteCalculator
}

// NewRateConfigHandler creates a new RateConfigHandler instance. The
// service may be nil, in which case only the active rates can be read.
func NewRateConfigHandler(rateConfigService service.RateConfigService, calculator service.QuoteCalculator) *RateConfigHandler {
	return &RateConfigHandler{
		rateConfigService: rateConfigService,
		calculator:        calculator,
	}
}

// GetActiveRates handles GET /api/pricing/rates requests.
//
// @Summary      Get active rates
// @Description  Returns the rate configuration quotes are priced with. Version 0 means the rates came from the rate file or the built-in defaults and were never stored.
// @Tags         Rates
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.RateConfigResponse} "Active rates"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Rate store unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/pricing/rates [get]
func (h *RateConfigHandler) GetActiveRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var doc *repository.RateConfigDocument
	if h.rateConfigService != nil {
		var err error
		doc, err = h.rateConfigService.GetActive(c.Request.Context())
		if err != nil && !errors.Is(err, service.ErrRepositoryNotConfigured) {
			respondStoreError(builder, err)
			return
		}
	}

	if doc == nil {
		builder.SuccessOK(dto.RateConfigResponse{
			Active: true,
			Config: h.calculator.Configuration(),
		})
		return
	}

	builder.SuccessOK(toRateConfigResponse(doc))
}

// UpdateRates handles PUT /api/pricing/rates requests.
//
// @Summary      Publish new rates
// @Description  Stores the rate document as a new active version and reprices every following quote with it. Missing fixed costs are defaulted and reported in repairs.
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateRateConfigRequest true "Rate document"
// @Success      200 {object} dto.SuccessResponse{data=dto.RateConfigResponse} "Stored version"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing tables"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Rate store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/rates [put]
func (h *RateConfigHandler) UpdateRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := decodeRequest[dto.UpdateRateConfigRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Config.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationRates, err)
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = middleware.GetActor(c)
	}

	doc, err := h.rateConfigService.Create(c.Request.Context(), req.Config, createdBy)
	if err != nil {
		middleware.AuditLogError(logSinkFrom(c), c, middleware.ActionUpdateRateConfig, "Rate configuration update failed", err, nil)
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionUpdateRateConfig, "Rate configuration updated", map[string]interface{}{
		"version": doc.Version,
		"repairs": len(doc.Repairs),
	})

	builder.SuccessOK(toRateConfigResponse(doc))
}

// ActivateRates handles POST /api/pricing/rates/{version}/activate requests.
//
// @Summary      Roll back to a stored version
// @Description  Makes a stored rate version active again.
// @Tags         Rates
// @Produce      json
// @Param        version path int true "Version to activate"
// @Success      200 {object} dto.SuccessResponse{data=dto.RateConfigResponse} "Activated version"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid version"
// @Failure      404 {object} dto.ErrorResponse "Version not found"
// @Security     ApiKeyAuth
// @Router       /api/pricing/rates/{version}/activate [post]
func (h *RateConfigHandler) ActivateRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationVersion, err)
		return
	}

	doc, err := h.rateConfigService.Activate(c.Request.Context(), version)
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	middleware.AuditLog(logSinkFrom(c), c, middleware.ActionUpdateRateConfig, "Rate configuration activated", map[string]interface{}{
		"version": doc.Version,
	})

	builder.SuccessOK(toRateConfigResponse(doc))
}

// ListRates handles GET /api/pricing/rates/history requests.
//
// @Summary      List rate history
// @Description  Returns stored rate versions, newest first
// @Tags         Rates
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.RateConfigResponse} "Rate history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Rate store unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/pricing/rates/history [get]
func (h *RateConfigHandler) ListRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	docs, err := h.rateConfigService.List(c.Request.Context(), queryLimit(c))
	if err != nil {
		respondStoreError(builder, err)
		return
	}

	resp := make([]dto.RateConfigResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, toRateConfigResponse(&docs[i]))
	}
	builder.SuccessOK(resp)
}

func toRateConfigResponse(doc *repository.RateConfigDocument) dto.RateConfigResponse {
	return dto.RateConfigResponse{
		Version:   doc.Version,
		Active:    doc.Active,
		Config:    doc.Config,
		Repairs:   doc.Repairs,
		CreatedBy: doc.CreatedBy,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
