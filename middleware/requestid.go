package middleware

import (
	"time"

	"github.com/oumarknt31/Restaurant-ai-system/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID propagates or assigns an X-Request-ID header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// RequestLogger writes one access-log line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		utils.InfoLogger.WithFields(map[string]interface{}{
			"rid":    rid,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"dur":    time.Since(start).String(),
		}).Info("request handled")
	}
}
