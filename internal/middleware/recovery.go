package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/metrics"
)

// Recovery turns a panic in a later handler into a 500 response and logs it
// with its stack on the request logger.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				RequestLog(c).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", c.FullPath()).
					Msg("Panic recovered")
				metrics.RecordPanic(routeLabel(c))

				if !c.Writer.Written() {
					abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}

// routeLabel is the matched route, or "unmatched" for 404s, so metric
// labels stay bounded.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
