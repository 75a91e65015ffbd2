package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lorehaven/arenagrid/internal/constants"
)

// RequestID assigns every request a correlation id, echoed in the
// X-Request-ID response header and available to handlers for logging.
// An id supplied by the caller is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(constants.HeaderRequestID, id)
		c.Next()
	}
}

const ctxKeyRequestID = "requestID"

// requestID returns the correlation id set by the RequestID middleware.
func requestID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyRequestID); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}
