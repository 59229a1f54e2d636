// File: wukala/handlers/application.go
package handlers

import (
	"net/http"

	"wukala/models"
	"wukala/services/application"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler exposes the lawyer application flow.
type ApplicationHandler struct {
	Ledger *application.Ledger
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(ledger *application.Ledger) *ApplicationHandler {
	return &ApplicationHandler{Ledger: ledger}
}

// SubmitApplicationHandler handles POST /api/applications.
func (h *ApplicationHandler) SubmitApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name           string `json:"name" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		Phone          string `json:"phone" binding:"required"`
		City           string `json:"city" binding:"required"`
		BarCouncilNo   string `json:"barCouncilNo" binding:"required"`
		DegreeTitle    string `json:"degreeTitle" binding:"required"`
		University     string `json:"university" binding:"required"`
		CompletionYear int    `json:"completionYear" binding:"required"`
		ChamberAddress string `json:"chamberAddress" binding:"required"`
		DegreeDocument string `json:"degreeDocument"`
		IntroVideo     string `json:"introVideo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid application request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	submitted := h.Ledger.Submit(models.LawyerApplication{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		City:           req.City,
		BarCouncilNo:   req.BarCouncilNo,
		DegreeTitle:    req.DegreeTitle,
		University:     req.University,
		CompletionYear: req.CompletionYear,
		ChamberAddress: req.ChamberAddress,
		DegreeDocument: req.DegreeDocument,
		IntroVideo:     req.IntroVideo,
	})
	c.JSON(http.StatusCreated, submitted)
}
