package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/model"
)

// Audit action types.
const (
	ActionCalculateQuote   = "calculate_quote"
	ActionSaveQuote        = "save_quote"
	ActionUpdateQuote      = "update_quote_status"
	ActionConvertQuote     = "convert_quote"
	ActionSaveOrder        = "save_order"
	ActionUpdateOrder      = "update_order_status"
	ActionUpdateRateConfig = "update_rate_config"
	ActionSaveStock        = "save_stock"
	ActionStockMovement    = "record_stock_movement"
)

// AuditLog records an action that priced or changed something, such as a
// saved quote or a new rate configuration.
func AuditLog(sink LogSink, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	sink.Log(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed action. The failure also goes to the
// request logger since stored audit entries may be dropped.
func AuditLogError(sink LogSink, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	RequestLog(c).Error().Err(err).Str("action", actionType).Msg(message)
	if sink == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Actor:      GetActor(c),
		ActionType: actionType,
		Fields:     fields,
	}
}
