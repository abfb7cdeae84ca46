package restapi

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// senderRateLimiter hands out one token bucket per chat sender.
type senderRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newSenderRateLimiter(rps float64, burst int) *senderRateLimiter {
	return &senderRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *senderRateLimiter) limiterFor(sender string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, ok := l.limiters[sender]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.rps, l.burst)
	l.limiters[sender] = limiter
	return limiter
}

// ChatRateLimitMiddleware throttles chat turns per sender. The sender key
// comes from the X-Sender-ID header when present, otherwise the client IP;
// the body is not read here so binding stays with the handler.
func ChatRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := newSenderRateLimiter(rps, burst)
	return func(c *gin.Context) {
		key := c.GetHeader("X-Sender-ID")
		if key == "" {
			key = c.ClientIP()
		}
		if !limiter.limiterFor(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status_message": "Rate limit exceeded, slow down.",
			})
			return
		}
		c.Next()
	}
}
