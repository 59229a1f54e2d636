package handlers

import (
	"net/http"

	"wukala/services/dictionary"

	"github.com/gin-gonic/gin"
)

// DictionaryHandler exposes the legal dictionary.
type DictionaryHandler struct {
	Service dictionary.DictionaryService
}

// NewDictionaryHandler creates a new DictionaryHandler.
func NewDictionaryHandler(svc dictionary.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{Service: svc}
}

// ListTermsHandler handles GET /api/dictionary. An optional ?letter= query
// restricts the listing to one initial letter.
func (h *DictionaryHandler) ListTermsHandler(c *gin.Context) {
	if letter := c.Query("letter"); letter != "" {
		c.JSON(http.StatusOK, h.Service.ByLetter(letter))
		return
	}
	c.JSON(http.StatusOK, h.Service.All())
}

// LookupTermHandler handles GET /api/dictionary/:term.
func (h *DictionaryHandler) LookupTermHandler(c *gin.Context) {
	term := h.Service.Lookup(c.Param("term"))
	if term == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Term not found"})
		return
	}
	c.JSON(http.StatusOK, term)
}
