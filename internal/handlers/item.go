// internal/handlers/item.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/marketplace-backend/internal/i18n"
	"github.com/javajoker/marketplace-backend/internal/services"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// GET /items
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}

// GET /items/:itemId
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item": item,
	})
}

// POST /stores/:storeId/items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "storeId", "store")
	if !ok {
		return
	}

	var req services.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), storeID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemCreated),
		"item":    item,
	})
}

// PUT /items/:itemId
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	var req services.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), itemID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemUpdated),
		"item":    item,
	})
}

// DELETE /items/:itemId
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemDeleted),
	})
}

// POST /items/:itemId/images
func (h *ItemHandler) AddItemImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	var req services.AddItemImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.itemService.AddItemImage(c.Request.Context(), itemID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyItemImageCreated),
		"image":   image,
	})
}
