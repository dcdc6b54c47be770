package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		path         string
		locale       string
		handler      gin.HandlerFunc
		wantStatus   int
		wantMessage  string
		wantPanicInc float64
	}{
		{
			name:         "panic becomes a 500",
			path:         "/recovery/panic",
			handler:      func(c *gin.Context) { panic("nil rate table") },
			wantStatus:   http.StatusInternalServerError,
			wantMessage:  "An unexpected error occurred",
			wantPanicInc: 1,
		},
		{
			name:         "message follows Accept-Language",
			path:         "/recovery/panic-fr",
			locale:       "fr-FR",
			handler:      func(c *gin.Context) { panic("nil rate table") },
			wantStatus:   http.StatusInternalServerError,
			wantMessage:  i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, "fr"),
			wantPanicInc: 1,
		},
		{
			name:       "no panic",
			path:       "/recovery/ok",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET(tt.path, tt.handler)

			before := testutil.ToFloat64(metrics.PanicsTotal.WithLabelValues(tt.path))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.locale != "" {
				req.Header.Set(i18n.AcceptLanguageHeader, tt.locale)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantPanicInc, testutil.ToFloat64(metrics.PanicsTotal.WithLabelValues(tt.path))-before)
			if tt.wantMessage == "" {
				assert.Equal(t, "ok", w.Body.String())
				return
			}
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInternal, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}

// TestRecovery_AfterWrite tests that a panic after the body was written
// keeps the original status.
func TestRecovery_AfterWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late failure")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRouteLabel(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, "unmatched", routeLabel(c))
}
