package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the cart session identifier. The cart exists before
// login, so it is keyed by this header rather than by the user id.
const SessionHeader = "X-Session-Id"

// SessionID assigns a fresh session id when the client does not present one,
// echoing it back so the client can persist it.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("session_id", id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}
