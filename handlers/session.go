// File: wukala/handlers/session.go
package handlers

import (
	"net/http"

	"wukala/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes session operations over HTTP.
type SessionHandler struct {
	Service session.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// SignInHandler handles POST /api/session/signin. A handle presented in the
// session header is reused; otherwise a fresh one is issued and returned.
func (h *SessionHandler) SignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sign-in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	handle := sessionHandle(c)
	if handle == "" {
		handle = c.GetHeader("X-Session-ID")
	}
	if handle == "" {
		handle = h.Service.NewHandle()
	}

	rec := h.Service.SignIn(handle, req.Name, req.Email)
	c.JSON(http.StatusOK, gin.H{
		"sessionId":  handle,
		"session":    rec,
		"navigation": session.NavigationFor(rec),
	})
}

// SignOutHandler handles POST /api/session/signout. Signing out an already
// signed-out handle is a no-op.
func (h *SessionHandler) SignOutHandler(c *gin.Context) {
	if handle := sessionHandle(c); handle != "" {
		h.Service.SignOut(handle)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// CurrentSessionHandler handles GET /api/session.
func (h *SessionHandler) CurrentSessionHandler(c *gin.Context) {
	rec := sessionRecord(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": rec != nil,
		"session":       rec,
		"navigation":    session.NavigationFor(rec),
	})
}

// NavigationHandler handles GET /api/session/navigation.
func (h *SessionHandler) NavigationHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"navigation": session.NavigationFor(sessionRecord(c))})
}

// OnboardingStatusHandler handles GET /api/session/onboarding.
func (h *SessionHandler) OnboardingStatusHandler(c *gin.Context) {
	handle := sessionHandle(c)
	seen := handle != "" && h.Service.HasSeenOnboarding(handle)
	c.JSON(http.StatusOK, gin.H{"seen": seen})
}

// MarkOnboardingHandler handles POST /api/session/onboarding.
func (h *SessionHandler) MarkOnboardingHandler(c *gin.Context) {
	handle := sessionHandle(c)
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session header: X-Session-ID"})
		return
	}
	h.Service.MarkOnboardingSeen(handle)
	c.JSON(http.StatusOK, gin.H{"seen": true})
}
