package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/rs/zerolog"
)

// RequestLogger writes one line per request on the request logger and,
// when sink is set, stores the same line. Health check requests are only stored
// when they fail.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		level := levelForStatus(status)

		RequestLog(c).WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status_code", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("actor", GetActor(c)).
			Int("bytes", c.Writer.Size()).
			Msg("HTTP request")

		if sink == nil || (isHealthCheck(c.Request.URL.Path) && status < 400) {
			return
		}
		sink.Log(&model.LogEntry{
			Timestamp:  start,
			Level:      level.String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Actor:      GetActor(c),
		})
	}
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func isHealthCheck(path string) bool {
	switch path {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return false
}
