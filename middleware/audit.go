package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Audit tags every request with an id and records the client IP for the
// audit trail written by the mutation handlers.
func Audit() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Set("client_ip", c.ClientIP())
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// GetIPFromContext returns the IP captured by the Audit middleware.
func GetIPFromContext(c *gin.Context) string {
	if ip, exists := c.Get("client_ip"); exists {
		if s, ok := ip.(string); ok {
			return s
		}
	}
	return c.ClientIP()
}
