package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiters tracks one token bucket per client IP. Entries idle past
// limiterIdleTTL are swept so the map cannot grow without bound.
type loginLimiters struct {
	mu        sync.Mutex
	perMinute int
	entries   map[string]*ipLimiter
	lastSweep time.Time
	now       func() time.Time
}

func newLoginLimiters(perMinute int, now func() time.Time) *loginLimiters {
	return &loginLimiters{
		perMinute: perMinute,
		entries:   make(map[string]*ipLimiter),
		lastSweep: now(),
		now:       now,
	}
}

func (l *loginLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepEvery {
		for key, e := range l.entries {
			if now.Sub(e.lastSeen) >= limiterIdleTTL {
				delete(l.entries, key)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.entries[ip]
	if !ok {
		e = &ipLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute),
		}
		l.entries[ip] = e
	}
	e.lastSeen = now
	return e.limiter.Allow()
}

func (l *loginLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// LoginRateLimit throttles requests per client IP to perMinute attempts,
// with a burst of the same size. Exceeding it returns 429.
func LoginRateLimit(perMinute int) gin.HandlerFunc {
	limiters := newLoginLimiters(perMinute, time.Now)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "too many login attempts, try again later"},
			})
			return
		}
		c.Next()
	}
}
