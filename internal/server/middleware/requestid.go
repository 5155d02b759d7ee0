package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request correlation id.
const HeaderRequestID = "X-Request-Id"

const requestIDKey = "request_id"

// RequestID returns middleware that tags every request with a correlation id.
// An id supplied by the caller survives so ids stay stable across proxy hops;
// otherwise a fresh UUID is minted. The id is echoed in the response header
// and picked up by the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom returns the correlation id tagged on the request, or "" when
// the RequestID middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
