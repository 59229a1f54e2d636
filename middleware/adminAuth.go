package middleware

import (
	"net/http"

	"wukala/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards admin-only routes. A session whose role has resolved
// to something other than admin is redirected away; a request with no
// session at all is rejected. A handle whose record could not be resolved
// is treated as unauthenticated rather than redirected, so a slow or
// unreadable store never bounces a would-be admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("sessionRecord")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
			return
		}

		rec, ok := val.(*models.SessionRecord)
		if !ok || rec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
			return
		}

		if rec.Role != models.RoleAdmin {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
