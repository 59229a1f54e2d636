package handlers

import (
	"net/http"

	"wukala/models"
	"wukala/services/messaging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessagingHandler exposes client-to-lawyer messaging.
type MessagingHandler struct {
	Service messaging.MessagingService
}

// NewMessagingHandler creates a new MessagingHandler.
func NewMessagingHandler(svc messaging.MessagingService) *MessagingHandler {
	return &MessagingHandler{Service: svc}
}

// StartConversationHandler handles POST /api/messages/conversations.
func (h *MessagingHandler) StartConversationHandler(c *gin.Context) {
	logger := getLogger(c)

	rec := sessionRecord(c)
	if rec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
		return
	}

	var req struct {
		LawyerID string `json:"lawyerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid conversation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	conv, err := h.Service.StartConversation(rec.Email, req.LawyerID)
	if err != nil {
		logger.Error("Failed to start conversation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// ListConversationsHandler handles GET /api/messages/conversations.
func (h *MessagingHandler) ListConversationsHandler(c *gin.Context) {
	rec := sessionRecord(c)
	convs, err := h.Service.Conversations(rec)
	if err != nil {
		getLogger(c).Error("Failed to list conversations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if convs == nil {
		convs = []models.Conversation{}
	}
	c.JSON(http.StatusOK, convs)
}

// SendMessageHandler handles POST /api/messages/conversations/:id.
func (h *MessagingHandler) SendMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	rec := sessionRecord(c)
	if rec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.Service.SendMessage(rec, c.Param("id"), req.Text)
	if err != nil {
		logger.Error("Failed to send message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessagesHandler handles GET /api/messages/conversations/:id.
func (h *MessagingHandler) ListMessagesHandler(c *gin.Context) {
	msgs, err := h.Service.Messages(sessionRecord(c), c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, msgs)
}
