package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/i18n"
)

// ErrorHandler logs the errors handlers attached to the context and answers
// for handlers that failed without writing a response. Bind errors become
// 400s, anything else a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		event := RequestLog(c).Warn()
		if c.Writer.Status() >= http.StatusInternalServerError || !c.Writer.Written() {
			event = RequestLog(c).Error()
		}
		event.Strs("errors", c.Errors.Errors()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		if last.IsType(gin.ErrorTypeBind) {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}
		abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
	}
}
