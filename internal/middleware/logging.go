package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfit-tech/lodestar-contract-api/internal/logger"
	"go.uber.org/zap"
)

// RequestLogging logs one structured line per request with the correlation
// id, outcome and timing.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		if logger.Log == nil {
			return
		}

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			logger.Log.Error("Request completed with errors", fields...)
			return
		}

		logger.Log.Info("Request completed", fields...)
	}
}
