package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestLimiter(t *testing.T, rate int, period time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(rate, period, WithShards(4), withClock(clock.Now))
	t.Cleanup(rl.Stop)
	return rl, clock
}

// TestRateLimiter_Take tests spending and refilling a caller's window.
func TestRateLimiter_Take(t *testing.T) {
	rl, clock := newTestLimiter(t, 3, time.Minute)

	for want := 2; want >= 0; want-- {
		allowed, remaining, _ := rl.take("ip:10.0.0.1")
		require.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining, resetAt := rl.take("ip:10.0.0.1")
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.Equal(t, clock.Now().Add(time.Minute), resetAt)

	other, _, _ := rl.take("ip:10.0.0.2")
	assert.True(t, other, "callers have separate windows")

	clock.Advance(time.Minute)
	allowed, remaining, _ = rl.take("ip:10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 2, remaining)
}

// TestRateLimiter_Middleware tests the headers and the 429 body.
func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		keyed      bool
		actors     []string
		wantStatus []int
	}{
		{
			name:       "per IP",
			actors:     []string{"", "", ""},
			wantStatus: []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:       "per key",
			keyed:      true,
			actors:     []string{"key-a", "key-a", "key-b", "key-a"},
			wantStatus: []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:       "per key falls back to IP",
			keyed:      true,
			actors:     []string{"", "", ""},
			wantStatus: []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, clock := newTestLimiter(t, 2, time.Minute)
			clock.Advance(15 * time.Second)

			router := gin.New()
			router.Use(RequestID())
			router.Use(func(c *gin.Context) {
				if actor := c.GetHeader("X-Test-Actor"); actor != "" {
					c.Set(ActorKey, actor)
				}
				c.Next()
			})
			if tt.keyed {
				router.Use(rl.KeyRateLimit())
			} else {
				router.Use(rl.RateLimit())
			}
			router.GET("/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

			for i, actor := range tt.actors {
				req := httptest.NewRequest(http.MethodGet, "/quote", nil)
				if actor != "" {
					req.Header.Set("X-Test-Actor", actor)
				}
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				require.Equal(t, tt.wantStatus[i], w.Code, "request %d", i+1)
				assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
				assert.Equal(t, strconv.FormatInt(clock.Now().Add(time.Minute).Unix(), 10), w.Header().Get("X-RateLimit-Reset"))
				if w.Code == http.StatusTooManyRequests {
					assert.Equal(t, "60", w.Header().Get("Retry-After"))
					assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
				}
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want int
	}{
		{wait: 0, want: 1},
		{wait: -time.Second, want: 1},
		{wait: 400 * time.Millisecond, want: 1},
		{wait: 59*time.Second + time.Millisecond, want: 60},
		{wait: 2 * time.Minute, want: 120},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, retryAfter(tt.wait), tt.wait.String())
	}
}

// TestRateLimiter_ForgetIdle tests that ended windows are dropped.
func TestRateLimiter_ForgetIdle(t *testing.T) {
	rl, clock := newTestLimiter(t, 5, time.Minute)

	rl.take("ip:10.0.0.1")
	clock.Advance(90 * time.Second)
	rl.take("ip:10.0.0.2")
	require.Equal(t, 2, rl.Tracked())

	clock.Advance(61 * time.Second)
	rl.forgetIdle()

	assert.Equal(t, 1, rl.Tracked())
}

func TestRateLimiter_Options(t *testing.T) {
	rl := NewRateLimiter(1, time.Second, WithShards(0))
	defer rl.Stop()
	assert.Len(t, rl.shards, defaultLimiterShards)

	rl2 := NewRateLimiter(1, time.Second, WithShards(3))
	assert.Len(t, rl2.shards, 3)
	rl2.Stop()
	rl2.Stop()
}
