package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second per client
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// Visitors idle for longer than this are forgotten
	IdleTTL time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client IP
type clientLimiter struct {
	config    RateLimitConfig
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newClientLimiter(config RateLimitConfig) *clientLimiter {
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	return &clientLimiter{
		config:   config,
		visitors: make(map[string]*visitor),
	}
}

func (l *clientLimiter) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.config.IdleTTL {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.config.IdleTTL {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.config.RPS), l.config.Burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimitMiddleware creates a per-client rate limiting middleware with the given configuration.
// Only POST requests are counted. Every other method is left to the handler.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiters := newClientLimiter(config)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		now := time.Now()
		limiter := limiters.get(utils.GetRealIP(c), now)

		if !limiter.AllowN(now, 1) {
			r := limiter.ReserveN(now, 1)
			delay := r.DelayFrom(now)
			r.CancelAt(now)
			c.Header("Retry-After", strconv.Itoa(int(delay.Seconds())+1))
			utils.HandleAPIError(c, nil, http.StatusTooManyRequests, common.MsgRateLimited)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(now))))

		c.Next()
	}
}
