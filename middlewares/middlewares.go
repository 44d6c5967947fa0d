package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// RequestID tags every request so an error notification on screen can be
// matched to server logs. An incoming X-Request-Id survives only when it
// parses as a UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get("X-Request-Id")
		if _, err := uuid.FromString(id); err != nil {
			id = uuid.Must(uuid.NewV4()).String()
		}

		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}
