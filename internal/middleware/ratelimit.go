package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RateLimit caps booking traffic per caller with a fixed-window counter in
// Redis. A nil client disables limiting; a Redis outage fails open so the
// booking path never depends on Redis being up.
func RateLimit(client *redis.Client, log logger.Logger, window time.Duration, maxRequests int) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if client == nil {
			c.Next()
			return
		}

		caller := c.GetHeader(UserIDHeader)
		if caller == "" {
			caller = c.ClientIP()
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s:%d", caller, time.Now().Unix()/int64(window.Seconds()))

		pipe := client.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)

		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("rate limiter unavailable", logger.Any("error", err))
			c.Next()
			return
		}

		if incr.Val() > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "too many requests, slow down"},
			)
			return
		}

		c.Next()
	}
}
