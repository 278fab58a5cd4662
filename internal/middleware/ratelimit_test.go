package middleware

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rps float64, burst int) (*gin.Engine, *test.Hook) {
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RateLimit(rps, burst, logger))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, hook
}

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	r, hook := newLimitedRouter(0.001, 2)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "Rate limit exceeded", entry.Message)
		assert.Equal(t, "10.0.0.1", entry.Data["client_ip"])
	}
}

func TestRateLimit_PerClientIP(t *testing.T) {
	r, _ := newLimitedRouter(0.001, 1)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"))
}

func TestRateLimit_Disabled(t *testing.T) {
	r, _ := newLimitedRouter(0, 1)

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	}
}

func TestRateLimiter_MinimumBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 0)

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
}

func (rl *RateLimiter) tracked() int {
	n := 0
	rl.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return clock }
	rl.lastSweep.Store(clock.UnixNano())

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	clock = clock.Add(DefaultLimiterIdleTTL / 2)
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, rl.tracked())

	clock = clock.Add(DefaultLimiterIdleTTL/2 + time.Second)
	assert.True(t, rl.Allow("10.0.0.3"))
	assert.Equal(t, 2, rl.tracked(), "only the client silent for the whole TTL is dropped")
	_, kept := rl.limiters.Load("10.0.0.2")
	assert.True(t, kept)
	_, dropped := rl.limiters.Load("10.0.0.1")
	assert.False(t, dropped)
}

func TestRateLimiter_IdleTTLCoversRefill(t *testing.T) {
	assert.Equal(t, DefaultLimiterIdleTTL, idleTTL(10, 5))
	assert.Equal(t, 2000*time.Second, idleTTL(0.5, 1000))
	assert.Equal(t, time.Duration(math.MaxInt64), idleTTL(1e-300, 1))
}
