// File: wukala/middleware/session.go
package middleware

import (
	"wukala/services/session"

	"github.com/gin-gonic/gin"
)

// SessionHeader carries the client's opaque session handle.
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the session handle into the request context.
// A missing or unknown handle is not an error; the request simply proceeds
// unauthenticated.
func SessionMiddleware(svc session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.GetHeader(SessionHeader)
		if handle == "" {
			c.Next()
			return
		}

		c.Set("sessionHandle", handle)
		if rec := svc.Current(handle); rec != nil {
			c.Set("sessionRecord", rec)
		}
		c.Next()
	}
}

// RequireSession aborts unauthenticated requests.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("sessionRecord"); !exists {
			c.AbortWithStatusJSON(401, gin.H{"error": "Sign in required"})
			return
		}
		c.Next()
	}
}
