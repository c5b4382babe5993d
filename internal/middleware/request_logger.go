package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gitchest/gitchest/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per handled request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(RequestIDKey),
			"elapsed":    time.Since(start).String(),
		}).Info("request handled")
	}
}
