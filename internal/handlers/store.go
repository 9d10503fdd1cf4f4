// internal/handlers/store.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/marketplace-backend/internal/i18n"
	"github.com/javajoker/marketplace-backend/internal/services"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// POST /stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateStoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStoreCreated),
		"store":   store,
	})
}

// GET /stores/current
func (h *StoreHandler) GetCurrentUserStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stores, err := h.storeService.GetStoresByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stores": stores,
	})
}

// GET /stores/:storeId
func (h *StoreHandler) GetStore(c *gin.Context) {
	storeID, ok := pathID(c, "storeId", "store")
	if !ok {
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"store": store,
	})
}
