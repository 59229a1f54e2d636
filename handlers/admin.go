// File: wukala/handlers/admin.go
package handlers

import (
	"net/http"

	"wukala/models"
	"wukala/services/application"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Ledger *application.Ledger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledger *application.Ledger) *AdminHandler {
	return &AdminHandler{Ledger: ledger}
}

// ListApplicationsHandler returns all lawyer applications, newest first.
func (ah *AdminHandler) ListApplicationsHandler(c *gin.Context) {
	apps := ah.Ledger.All()
	if apps == nil {
		apps = []models.LawyerApplication{}
	}
	c.JSON(http.StatusOK, apps)
}

// ReviewApplicationHandler approves or rejects an application. Reviewing an
// unknown or already-reviewed application changes nothing; the current
// ledger is returned either way.
func (ah *AdminHandler) ReviewApplicationHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required,oneof=approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Error("Invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ah.Ledger.SetStatus(id, req.Status)
	c.JSON(http.StatusOK, ah.Ledger.All())
}
