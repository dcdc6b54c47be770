package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/i18n"
)

const defaultLimiterShards = 16

// window is the request count of one caller in its current fixed window.
type window struct {
	used    int
	resetAt time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// RateLimiter allows each caller a fixed number of requests per window.
// Callers are spread over shards keyed by xxhash so concurrent callers
// rarely share a lock.
type RateLimiter struct {
	shards []*limiterShard
	rate   int
	period time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// LimiterOption configures a RateLimiter.
type LimiterOption func(*RateLimiter)

// WithShards sets the number of shards. Non-positive values are ignored.
func WithShards(n int) LimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.shards = newLimiterShards(n)
		}
	}
}

// withClock replaces time.Now in tests.
func withClock(now func() time.Time) LimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter starts a limiter allowing rate requests per period and a
// janitor that forgets idle callers. Stop ends the janitor.
func NewRateLimiter(rate int, period time.Duration, opts ...LimiterOption) *RateLimiter {
	rl := &RateLimiter{
		shards: newLimiterShards(defaultLimiterShards),
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.janitor()
	return rl
}

func newLimiterShards(n int) []*limiterShard {
	shards := make([]*limiterShard, n)
	for i := range shards {
		shards[i] = &limiterShard{windows: make(map[string]*window)}
	}
	return shards
}

func (rl *RateLimiter) shard(identifier string) *limiterShard {
	return rl.shards[xxhash.Sum64String(identifier)%uint64(len(rl.shards))]
}

// take spends one request of identifier's window. It reports whether the
// request is allowed, how many remain and when the window resets.
func (rl *RateLimiter) take(identifier string) (allowed bool, remaining int, resetAt time.Time) {
	s := rl.shard(identifier)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[identifier]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rl.period)}
		s.windows[identifier] = w
	}
	if w.used >= rl.rate {
		return false, 0, w.resetAt
	}
	w.used++
	return true, rl.rate - w.used, w.resetAt
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.limit(c, "ip:"+c.ClientIP())
	}
}

// KeyRateLimit limits requests per API key, or per client IP for requests
// that were not authenticated.
func (rl *RateLimiter) KeyRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.limit(c, callerID(c))
	}
}

func (rl *RateLimiter) limit(c *gin.Context, identifier string) {
	allowed, remaining, resetAt := rl.take(identifier)

	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

	if !allowed {
		c.Header("Retry-After", strconv.Itoa(retryAfter(resetAt.Sub(rl.now()))))
		abortWithError(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
		return
	}
	c.Next()
}

// retryAfter rounds the wait up to whole seconds, at least one.
func retryAfter(wait time.Duration) int {
	return max(1, int(math.Ceil(wait.Seconds())))
}

func callerID(c *gin.Context) string {
	if actor := GetActor(c); actor != "" {
		return "key:" + actor
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.forgetIdle()
		case <-rl.stopCh:
			return
		}
	}
}

// forgetIdle drops windows that ended more than a period ago.
func (rl *RateLimiter) forgetIdle() {
	cutoff := rl.now().Add(-rl.period)
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, w := range s.windows {
			if w.resetAt.Before(cutoff) {
				delete(s.windows, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the janitor. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Tracked returns how many callers currently hold a window.
func (rl *RateLimiter) Tracked() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.windows)
		s.mu.Unlock()
	}
	return total
}
