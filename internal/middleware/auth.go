package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// ActorKey is the context key holding the id of the authenticated key.
	ActorKey = "actor"
)

// APIKeyAuth rejects requests without one of the configured keys, read from
// X-API-Key or the api_key query parameter. With no keys configured every
// request passes.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	keys := make([]string, 0, len(validKeys))
	for key, enabled := range validKeys {
		if enabled && key != "" {
			keys = append(keys, key)
		}
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key == "" {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !knownKey(keys, key) {
			RequestLog(c).Warn().Str("key_id", KeyID(key)).Str("path", c.Request.URL.Path).Msg("Rejected API key")
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
			return
		}

		actor := KeyID(key)
		c.Set(ActorKey, actor)
		reqLogger := RequestLog(c).With().Str("actor", actor).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))
		c.Next()
	}
}

// knownKey compares in constant time against every configured key.
func knownKey(keys []string, candidate string) bool {
	found := 0
	for _, key := range keys {
		found |= subtle.ConstantTimeCompare([]byte(key), []byte(candidate))
	}
	return found == 1
}

// KeyID derives a stable, non-reversible id for an API key so logs and
// records can name the caller without storing the key.
func KeyID(key string) string {
	return "key-" + strconv.FormatUint(xxhash.Sum64String(key)&0xffffffff, 16)
}

// GetActor returns the id of the authenticated key, or "" when the request
// was not authenticated.
func GetActor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
