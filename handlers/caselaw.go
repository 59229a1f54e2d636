package handlers

import (
	"net/http"
	"strconv"

	"wukala/models"
	"wukala/services/caselaw"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaseLawHandler exposes case-law search and bookmarks.
type CaseLawHandler struct {
	Service caselaw.CaseLawService
}

// NewCaseLawHandler creates a new CaseLawHandler.
func NewCaseLawHandler(svc caselaw.CaseLawService) *CaseLawHandler {
	return &CaseLawHandler{Service: svc}
}

// SearchCasesHandler handles GET /api/caselaw.
func (h *CaseLawHandler) SearchCasesHandler(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	query := models.CaseSearchQuery{
		Text:  c.Query("q"),
		Court: c.Query("court"),
		Year:  year,
	}

	cases, err := h.Service.Search(query)
	if err != nil {
		getLogger(c).Error("Failed to search case law", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cases)
}

// GetCaseHandler handles GET /api/caselaw/id/:id.
func (h *CaseLawHandler) GetCaseHandler(c *gin.Context) {
	id := c.Param("id")
	cl, err := h.Service.GetByID(id)
	if err != nil {
		getLogger(c).Error("Case not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// ToggleBookmarkHandler handles POST /api/caselaw/bookmarks/:id.
func (h *CaseLawHandler) ToggleBookmarkHandler(c *gin.Context) {
	handle := sessionHandle(c)
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session header: X-Session-ID"})
		return
	}
	bookmarks := h.Service.ToggleBookmark(handle, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

// ListBookmarksHandler handles GET /api/caselaw/bookmarks.
func (h *CaseLawHandler) ListBookmarksHandler(c *gin.Context) {
	handle := sessionHandle(c)
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session header: X-Session-ID"})
		return
	}
	bookmarks := h.Service.Bookmarks(handle)
	if bookmarks == nil {
		bookmarks = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
