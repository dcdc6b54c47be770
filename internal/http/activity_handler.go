package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/service"
)

// ActivityHandler serves the stored request and audit log.
type ActivityHandler struct {
	logs service.LoggingService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(logs service.LoggingService) *ActivityHandler {
	return &ActivityHandler{logs: logs}
}

var errBadTime = errors.New("time must be RFC 3339")

// ListActivity handles GET /api/pricing/activity requests.
//
// @Summary      Browse the activity log
// @Description  Returns stored request lines and audit records, newest first. With audit=true only actions such as saved quotes or rate updates are listed.
// @Tags         Activity
// @Produce      json
// @Param        actor      query string false "API key id, such as key-1a2b3c4d"
// @Param        action     query string false "Audit action, such as convert_quote"
// @Param        request_id query string false "Request id"
// @Param        level      query string false "Log level"
// @Param        audit      query bool   false "Only audit records"
// @Param        since      query string false "RFC 3339 lower bound"
// @Param        until      query string false "RFC 3339 upper bound"
// @Param        limit      query int    false "Page size, at most 500"
// @Param        offset     query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=model.ActivityPage} "Activity page"
// @Failure      400 {object} dto.ErrorResponse "Bad time window"
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/pricing/activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, err := activityFilter(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFilter, err)
		return
	}

	page, err := h.logs.Activity(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, model.ErrInvalidFilter) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFilter, err)
			return
		}
		respondStoreError(builder, err)
		return
	}
	builder.SuccessOK(page)
}

func activityFilter(c *gin.Context) (model.ActivityFilter, error) {
	f := model.ActivityFilter{
		Actor:     c.Query("actor"),
		Action:    c.Query("action"),
		RequestID: c.Query("request_id"),
		Level:     c.Query("level"),
		Limit:     queryLimit(c),
	}
	f.AuditOnly, _ = strconv.ParseBool(c.Query("audit"))
	if off, err := strconv.Atoi(c.Query("offset")); err == nil {
		f.Offset = off
	}

	var err error
	if f.Since, err = queryTime(c, "since"); err != nil {
		return f, err
	}
	if f.Until, err = queryTime(c, "until"); err != nil {
		return f, err
	}
	return f, nil
}

func queryTime(c *gin.Context, name string) (time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, errBadTime
	}
	return t, nil
}
