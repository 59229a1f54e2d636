package handlers

import (
	"net/http"

	lawyerRepo "wukala/database/repository/lawyer"
	"wukala/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler exposes the lawyer directory.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// ListLawyersHandler handles GET /api/lawyers.
func (h *DirectoryHandler) ListLawyersHandler(c *gin.Context) {
	query := lawyerRepo.DirectoryQuery{
		City:           c.Query("city"),
		Specialization: c.Query("specialization"),
		SortBy:         c.Query("sort"),
	}

	lawyers, err := h.Service.List(query)
	if err != nil {
		getLogger(c).Error("Failed to list lawyers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lawyers)
}

// GetLawyerHandler handles GET /api/lawyers/id/:id.
func (h *DirectoryHandler) GetLawyerHandler(c *gin.Context) {
	id := c.Param("id")
	lawyer, err := h.Service.GetByID(id)
	if err != nil {
		getLogger(c).Error("Lawyer not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lawyer)
}

// ListCitiesHandler handles GET /api/lawyers/cities.
func (h *DirectoryHandler) ListCitiesHandler(c *gin.Context) {
	cities, err := h.Service.Cities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
