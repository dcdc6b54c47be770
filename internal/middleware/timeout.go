package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/i18n"
)

const defaultRequestTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Store calls and the
// pricing handlers honour it; when the handler returns after the deadline
// without having written anything, the client gets a 504.
//
// The handler runs on the request goroutine, so a handler that ignores its
// context is not cut short.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		RequestLog(c).Warn().
			Dur("timeout", timeout).
			Str("path", c.Request.URL.Path).
			Msg("Request deadline exceeded")
		abortWithError(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
	}
}
