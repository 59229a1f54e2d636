package handlers

import (
	"net/http"

	"wukala/models"
	"wukala/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the simulated assistant chat.
type AssistantHandler struct {
	Service assistant.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// AskHandler handles POST /api/assistant/ask.
func (h *AssistantHandler) AskHandler(c *gin.Context) {
	logger := getLogger(c)

	handle := sessionHandle(c)
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session header: X-Session-ID"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid assistant request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ack, err := h.Service.Ask(handle, req.Text)
	if err != nil {
		logger.Error("Assistant ask failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ack)
}

// HistoryHandler handles GET /api/assistant/history.
func (h *AssistantHandler) HistoryHandler(c *gin.Context) {
	handle := sessionHandle(c)
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session header: X-Session-ID"})
		return
	}

	history, err := h.Service.History(handle)
	if err != nil {
		getLogger(c).Error("Assistant history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if history == nil {
		history = []models.AssistantMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}

// ClearHistoryHandler handles DELETE /api/assistant/history.
func (h *AssistantHandler) ClearHistoryHandler(c *gin.Context) {
	handle := sessionHandle(c)
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session header: X-Session-ID"})
		return
	}

	if err := h.Service.ClearHistory(handle); err != nil {
		getLogger(c).Error("Assistant clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "History cleared"})
}
