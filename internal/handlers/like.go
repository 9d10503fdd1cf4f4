// internal/handlers/like.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/marketplace-backend/internal/i18n"
	"github.com/javajoker/marketplace-backend/internal/services"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

type LikeHandler struct {
	likeService *services.LikeService
}

func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// GET /items/:itemId/likes
func (h *LikeHandler) GetItemLikes(c *gin.Context) {
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	likes, err := h.likeService.ListLikesForItem(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"likes": likes,
	})
}

// POST /items/:itemId/likes
// Answers 201 when the like is new and 200 when it already existed.
func (h *LikeHandler) LikeItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	like, created, err := h.likeService.CreateLike(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	status, key := http.StatusOK, i18n.KeyLikeExists
	if created {
		status, key = http.StatusCreated, i18n.KeyLikeCreated
	}
	c.JSON(status, utils.APIResponse{
		Success: true,
		Data: gin.H{
			"message": i18n.T(lang, key),
			"like":    like,
		},
	})
}

// DELETE /items/:itemId/likes
func (h *LikeHandler) UnlikeItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId", "item")
	if !ok {
		return
	}

	if err := h.likeService.DeleteLike(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLikeDeleted),
	})
}

// GET /likes/current
func (h *LikeHandler) GetCurrentUserLikes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.respondLikedItems(c, userID)
}

// GET /users/:userId/likes
func (h *LikeHandler) GetUserLikes(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}
	h.respondLikedItems(c, userID)
}

func (h *LikeHandler) respondLikedItems(c *gin.Context, userID uint) {
	items, err := h.likeService.ListLikedItemsForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items": items,
	})
}
