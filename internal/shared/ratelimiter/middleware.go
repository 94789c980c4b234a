package ratelimiter

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ClientIP resolves the client's network identity for rate-limit keying.
// Resolution order reflects trust in a reverse-proxy deployment:
// forwarded-for header (first entry), then real-IP header, then the
// transport-level peer address, then an "unknown" sentinel.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	if c.Request.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
			return host
		}
		return c.Request.RemoteAddr
	}

	return "unknown"
}

// Middleware returns a Gin middleware enforcing maxRequests per window for
// each (client IP, endpoint path) pair. Denied requests get a 429 with a
// Retry-After hint; allowed requests get remaining-quota headers.
func Middleware(l *Limiter, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ClientIP(c) + ":" + c.Request.URL.Path

		allowed, remaining := l.Allow(key, maxRequests, window)
		if !allowed {
			slog.Warn("rate limit exceeded", "key", key)
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}
