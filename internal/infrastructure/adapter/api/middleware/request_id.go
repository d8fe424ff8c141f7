package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key the request identifier is stored under.
const RequestIDKey = "request_id"

// requestIDHeader carries the identifier to and from the client.
const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a correlation identifier. A client-supplied
// X-Request-ID is kept; otherwise a fresh UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
