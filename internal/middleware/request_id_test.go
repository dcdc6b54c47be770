package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// TestRequestID tests which client IDs are kept and which are replaced.
func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		headerValue string
		keep        bool
	}{
		{name: "generated when missing", headerValue: ""},
		{name: "client ID kept", headerValue: "devis-2026-0042", keep: true},
		{name: "whitespace replaced", headerValue: "devis 42"},
		{name: "control characters replaced", headerValue: "id\x07bell"},
		{name: "oversized ID replaced", headerValue: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "ID at the size limit kept", headerValue: strings.Repeat("a", maxRequestIDLength), keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/quote", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/quote", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.headerValue, id)
				return
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.Set(RequestIDKey, "test-id-123")
	assert.Equal(t, "test-id-123", GetRequestID(c))
}

// TestRequestLog tests that log lines written during a request carry its ID.
func TestRequestLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	router := gin.New()
	router.Use(RequestID())
	router.GET("/quote", func(c *gin.Context) {
		RequestLog(c).Info().Msg("pricing")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	req.Header.Set(RequestIDHeader, "req-77")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-77"`)
	assert.Contains(t, buf.String(), `"message":"pricing"`)

	t.Run("outside a request falls back to the global logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Same(t, &log.Logger, RequestLog(c))
	})
}
