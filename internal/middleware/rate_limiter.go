package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harish176/placement-portal/internal/app/models/dto"
)

// WindowCounter counts hits per key in a fixed window.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiter is a fixed-window limiter backed by a shared counter, so the
// limit holds across instances. Counter failures let the request through.
type RateLimiter struct {
	counter WindowCounter
	limit   int64
	window  time.Duration
	prefix  string
	logger  zerolog.Logger
}

// NewRateLimiter creates a limiter allowing limit hits per window.
func NewRateLimiter(counter WindowCounter, prefix string, limit int, window time.Duration, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   int64(limit),
		window:  window,
		prefix:  prefix,
		logger:  logger,
	}
}

// Middleware limits by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.counter == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		key := "ratelimit:" + rl.prefix + ":" + clientIP(c)
		count, ttl, err := rl.counter.IncrWindow(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.logger.Warn().Err(err).Str("key", key).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count > rl.limit {
			retryAfter := int(ttl.Round(time.Second).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.ErrorCodeRateLimited,
				"Too many requests. Please try again later.",
				nil,
			))
			return
		}
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if host, _, err := net.SplitHostPort(ip); err == nil && host != "" {
		return host
	}
	return ip
}
