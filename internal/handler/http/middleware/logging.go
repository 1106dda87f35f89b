package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// StructuredLogger logs one line per request with slog.
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		if uid, ok := UserID(c); ok {
			fields = append(fields, slog.String("user_id", uid))
		}

		switch {
		case len(c.Errors) > 0:
			fields = append(fields, slog.String("error", c.Errors.String()))
			logger.Error("request failed", fields...)
		case status >= 500:
			logger.Error("request failed", fields...)
		default:
			logger.Info("request processed", fields...)
		}
	}
}
