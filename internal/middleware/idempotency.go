package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the request header naming a retryable write.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks responses served from the replay store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a completed response can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute

	maxIdempotencyKeyLength = 255
)

// replayedHeaders are the response headers worth replaying. Rate limit and
// request id headers belong to the retry, not to the original.
var replayedHeaders = []string{"Content-Type", "Location"}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store   *idempotencyStore
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config with an in-memory store.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Store:   newIdempotencyStore(IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Idempotency replays the first successful response of a write carrying an
// Idempotency-Key. Keys are scoped to the caller, method and path. Reusing a
// key with a different body, or while the first request is still running,
// is a conflict. Failed responses are not stored so the client can retry.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isWrite(c.Request.Method) {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequest)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		scope := scopeKey(GetActor(c), key, c.Request.Method, c.FullPath())
		fingerprint := xxhash.Sum64(body)

		stored, claimed := cfg.Store.claim(scope)
		switch {
		case stored != nil && stored.fingerprint != fingerprint:
			RequestLog(c).Warn().Str("idempotency_key", key).Msg("Idempotency key reused with a different body")
			abortWithError(c, http.StatusConflict, i18n.ErrKeyConflict)
			return
		case stored != nil:
			replay(c, stored)
			return
		case !claimed:
			abortWithError(c, http.StatusConflict, i18n.ErrKeyConflict)
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		status := recorder.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			cfg.Store.release(scope)
			return
		}

		headers := make(map[string]string, len(replayedHeaders))
		for _, name := range replayedHeaders {
			if v := recorder.Header().Get(name); v != "" {
				headers[name] = v
			}
		}
		cfg.Store.complete(scope, &storedResponse{
			fingerprint: fingerprint,
			status:      status,
			headers:     headers,
			body:        recorder.body.Bytes(),
		})
	}
}

func isWrite(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func replay(c *gin.Context, stored *storedResponse) {
	for name, value := range stored.headers {
		c.Header(name, value)
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(stored.status, stored.headers["Content-Type"], stored.body)
	c.Abort()
}

// scopeKey hashes the caller and target with the client key so the same key
// from two API keys or on two routes never collides.
func scopeKey(actor, key, method, route string) uint64 {
	d := xxhash.New()
	for _, part := range []string{actor, key, method, route} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// bodyRecorder copies the response body while writing it through.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
