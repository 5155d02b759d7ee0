package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrack/internal/auth/authctx"
	"github.com/skillsenselab/fintrack/internal/auth/token"
	"github.com/skillsenselab/fintrack/internal/logger"
)

// RequestLogger returns middleware that logs every request with method, path,
// status, and latency. Authenticated requests are tagged with the caller id
// from the verified claims. Health checks are silently skipped.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}
		if id := RequestIDFrom(c); id != "" {
			fields["request_id"] = id
		}
		if claims, ok := authctx.Get[*token.AccessClaims](c.Request.Context()); ok {
			fields["user_id"] = claims.UserID
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields)
		case status >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request", fields)
		}
	}
}
