package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"fitnessforge/internal/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit throttles a route per client IP. Limiter failures let the
// request through so a redis outage does not lock users out.
func RateLimit(limiter RequestRateLimiter, routeName string, m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), routeName+":"+c.ClientIP())
		if err != nil {
			log.Errorf("rate limit %s: %s", routeName, err)
			c.Next()
			return
		}
		if allowed {
			c.Next()
			return
		}

		if m != nil {
			m.CounterRateLimited.Inc()
		}
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"status":  "error",
			"message": "Too many requests",
			"error":   fmt.Sprintf("retry after %.0f seconds", math.Ceil(retryAfter.Seconds())),
		})
	}
}
