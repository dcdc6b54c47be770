package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPIKeyAuth tests where keys are read from and how rejections read.
func TestAPIKeyAuth(t *testing.T) {
	keys := map[string]bool{"front-desk": true, "atelier": true, "retired": false}

	tests := []struct {
		name    string
		keys    map[string]bool
		header  string
		query   string
		locale  string
		want    int
		message string
	}{
		{name: "header key", keys: keys, header: "atelier", want: http.StatusOK},
		{name: "query key", keys: keys, query: "front-desk", want: http.StatusOK},
		{name: "header wins over query", keys: keys, header: "atelier", query: "nope", want: http.StatusOK},
		{name: "no key", keys: keys, want: http.StatusUnauthorized, message: "API key is required"},
		{name: "unknown key", keys: keys, header: "guess", want: http.StatusUnauthorized, message: "Invalid API key"},
		{name: "disabled key", keys: keys, header: "retired", want: http.StatusUnauthorized, message: "Invalid API key"},
		{name: "translated rejection", keys: keys, locale: "fr", want: http.StatusUnauthorized, message: "Clé API requise"},
		{name: "no keys configured", want: http.StatusOK},
		{name: "only disabled keys configured", keys: map[string]bool{"retired": false}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(APIKeyAuth(tt.keys))
			router.GET("/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			if tt.query != "" {
				req.URL.RawQuery = APIKeyQuery + "=" + tt.query
			}
			if tt.locale != "" {
				req.Header.Set("Accept-Language", tt.locale)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tt.want, w.Code)
			if tt.message == "" {
				return
			}
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

// TestAPIKeyAuth_SetsActor tests that authenticated requests carry the key id.
func TestAPIKeyAuth_SetsActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var actor string
	router := gin.New()
	router.Use(APIKeyAuth(map[string]bool{"shop-front-key": true}))
	router.GET("/test", func(c *gin.Context) {
		actor = GetActor(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(APIKeyHeader, "shop-front-key")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, KeyID("shop-front-key"), actor)
	assert.NotContains(t, actor, "shop-front-key")
}

// TestKeyID tests that key ids are stable and distinct.
func TestKeyID(t *testing.T) {
	a := KeyID("key-one")
	assert.Equal(t, a, KeyID("key-one"))
	assert.NotEqual(t, a, KeyID("key-two"))
	assert.Regexp(t, `^key-[0-9a-f]{1,8}$`, a)
}

func TestKnownKey(t *testing.T) {
	keys := []string{"front-desk", "atelier"}

	assert.True(t, knownKey(keys, "atelier"))
	assert.False(t, knownKey(keys, "atelie"))
	assert.False(t, knownKey(keys, ""))
	assert.False(t, knownKey(nil, "atelier"))
}
