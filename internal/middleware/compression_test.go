package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ticket = "Format Standard\nImpression: Recto/Verso\nPapier: Couché 135g Mat"

// TestCompression tests which responses are gzipped and that they decode.
func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Compression())
	for _, path := range []string{"/api/pricing/summary", "/metrics", "/healthz", "/readyz"} {
		router.GET(path, func(c *gin.Context) { c.String(http.StatusOK, ticket) })
	}

	tests := []struct {
		path     string
		encoding string
		gzipped  bool
	}{
		{path: "/api/pricing/summary", encoding: "gzip", gzipped: true},
		{path: "/api/pricing/summary", encoding: "br;q=1.0, gzip;q=0.8", gzipped: true},
		{path: "/api/pricing/summary"},
		{path: "/metrics", encoding: "gzip"},
		{path: "/healthz", encoding: "gzip"},
		{path: "/readyz", encoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.encoding, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.encoding != "" {
				req.Header.Set("Accept-Encoding", tt.encoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			if !tt.gzipped {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, ticket, w.Body.String())
				return
			}
			assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(w.Body)
			require.NoError(t, err)
			body, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, ticket, string(body))
		})
	}
}
