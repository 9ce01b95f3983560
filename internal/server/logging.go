package server

import (
	"time"

	"gymfinder/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggingMiddleware logs one line per HTTP request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.Infof("%s %s status=%d latency_ms=%d ip=%s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency.Milliseconds(),
			c.ClientIP(),
		)
	}
}
