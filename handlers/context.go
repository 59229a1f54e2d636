package handlers

import (
	"wukala/models"

	"github.com/gin-gonic/gin"
)

// sessionHandle returns the request's session handle, or "".
func sessionHandle(c *gin.Context) string {
	if v, exists := c.Get("sessionHandle"); exists {
		if handle, ok := v.(string); ok {
			return handle
		}
	}
	return ""
}

// sessionRecord returns the request's resolved session record, or nil.
func sessionRecord(c *gin.Context) *models.SessionRecord {
	if v, exists := c.Get("sessionRecord"); exists {
		if rec, ok := v.(*models.SessionRecord); ok {
			return rec
		}
	}
	return nil
}
