package middleware

import (
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// DefaultLimiterIdleTTL is how long a client IP may stay silent before its
// bucket is dropped.
const DefaultLimiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the idle TTL are swept so the map does not grow with every client
// ever seen.
type RateLimiter struct {
	limiters  sync.Map
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		rate:    rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL(rps, burst),
		now:     time.Now,
	}
	rl.lastSweep.Store(rl.now().UnixNano())
	return rl
}

// idleTTL never drops a bucket before it could have refilled, so eviction
// hands no client extra tokens.
func idleTTL(rps float64, burst int) time.Duration {
	if rps <= 0 {
		return DefaultLimiterIdleTTL
	}
	refill := float64(burst) / rps * float64(time.Second)
	if refill >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return max(DefaultLimiterIdleTTL, time.Duration(refill))
}

// Allow reports whether one more request from ip fits in its bucket
func (rl *RateLimiter) Allow(ip string) bool {
	now := rl.now()
	rl.sweep(now)

	v, ok := rl.limiters.Load(ip)
	if !ok {
		v, _ = rl.limiters.LoadOrStore(ip, &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	}
	e := v.(*limiterEntry)
	e.lastSeen.Store(now.UnixNano())
	return e.limiter.AllowN(now, 1)
}

// sweep drops idle buckets, at most once per idle TTL.
func (rl *RateLimiter) sweep(now time.Time) {
	last := rl.lastSweep.Load()
	if now.UnixNano()-last < int64(rl.idleTTL) || !rl.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-rl.idleTTL).UnixNano()
	rl.limiters.Range(func(key, v any) bool {
		if v.(*limiterEntry).lastSeen.Load() < cutoff {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimit rejects requests over rps per client IP with 429. A
// non-positive rps disables the limit.
func RateLimit(rps float64, burst int, logger logrus.FieldLogger) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	limiter := NewRateLimiter(rps, burst)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"client_ip":  ip,
			}).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				models.NewAPIError(models.ErrTooManyRequests, "Too many requests, please try again later"))
			return
		}
		c.Next()
	}
}
