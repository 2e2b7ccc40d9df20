package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tropicacao/leads-api/internal/ratelimit"
	apperrors "github.com/tropicacao/leads-api/pkg/errors"
	"github.com/tropicacao/leads-api/pkg/metrics"
	"golang.org/x/time/rate"
)

// SubmitRateLimit guards an expensive endpoint with a fixed-window counter
// keyed by client IP. Rejections carry a Retry-After header so well-behaved
// clients can back off precisely.
func SubmitRateLimit(scope string, fw *ratelimit.FixedWindow) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := fw.Allow(ratelimit.ClientKey(c.Request))
		if !allowed {
			metrics.RateLimitRejections.WithLabelValues(scope).Inc()
			_ = c.Error(apperrors.ErrThrottled) //nolint:errcheck

			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimiter is a per-IP token bucket for the cheap endpoints (health,
// metrics, events). Unlike the fixed window above it smooths bursts rather
// than counting them against a hard quota.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

// NewRateLimiter creates a limiter allowing r requests per second with
// bursts up to b.
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}

	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.visitors[ip] = limiter
	}

	return limiter
}

// cleanupVisitors drops buckets that have refilled completely, meaning the
// client has been quiet for a while.
func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for ip, limiter := range rl.visitors {
			if limiter.Tokens() >= float64(rl.b) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns the Gin handler enforcing the bucket.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getVisitor(c.ClientIP()).Allow() {
			metrics.RateLimitRejections.WithLabelValues("general").Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
