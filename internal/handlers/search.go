// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/marketplace-backend/internal/i18n"
	"github.com/javajoker/marketplace-backend/internal/services"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// GET /search?type=items|users&query=...
func (h *SearchHandler) Search(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	results, err := h.searchService.Search(c.Request.Context(), c.Query("type"), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	meta := gin.H{"count": results.Len()}
	if results.Type == services.SearchTypeUnknown {
		meta["notice"] = i18n.T(lang, i18n.KeySearchUnknownType)
	}

	utils.SuccessResponseWithMeta(c, gin.H{
		"type":    results.Type,
		"results": results.Results(),
	}, meta)
}
