package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elhoucineqara/saascompare/internal/service"
)

// SearchHandler serves typeahead search.
type SearchHandler struct {
	searchService service.SearchServiceInterface
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService service.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /search and GET /api/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.searchService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Search failed")
		return
	}

	c.JSON(http.StatusOK, result)
}
