// internal/services/item_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/models"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

type ItemService struct {
	db                   *gorm.DB
	authorizationService *AuthorizationService
}

type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// UpdateItemRequest only changes the fields that are present.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

type AddItemImageRequest struct {
	URL string `json:"url" validate:"required,url,max=2048"`
}

func (r *UpdateItemRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.Quantity != nil {
		updates["quantity"] = *r.Quantity
	}
	return updates
}

func NewItemService(db *gorm.DB, authorizationService *AuthorizationService) *ItemService {
	return &ItemService{
		db:                   db,
		authorizationService: authorizationService,
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Preload("ItemImages", orderByID).
		Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	return s.loadItem(s.db.WithContext(ctx), id)
}

func (s *ItemService) loadItem(db *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	if err := db.Preload("ItemImages", orderByID).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Item")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

// CreateItem adds an item to a store owned by userID.
func (s *ItemService) CreateItem(ctx context.Context, storeID, userID uint, req *CreateItemRequest) (*models.Item, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	var item *models.Item
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var store models.Store
		if err := database.ForShare(tx).First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("Store")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if store.OwnerID != userID {
			return Forbidden("Store", "not store owner")
		}

		item = &models.Item{
			StoreID:     store.ID,
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Price:       req.Price,
			Quantity:    req.Quantity,
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial update after the ownership check, inside the
// same transaction.
func (s *ItemService) UpdateItem(ctx context.Context, itemID, userID uint, req *UpdateItemRequest) (*models.Item, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Item
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		item, err := s.authorizationService.AuthorizeItemMutation(ctx, tx, itemID, userID)
		if err != nil {
			return err
		}

		if updates := req.updates(); len(updates) > 0 {
			if err := tx.Model(item).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}
		}

		// Reload with relationships
		updated, err = s.loadItem(tx, item.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteItem removes the item together with its images and likes.
func (s *ItemService) DeleteItem(ctx context.Context, itemID, userID uint) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		item, err := s.authorizationService.AuthorizeItemMutation(ctx, tx, itemID, userID)
		if err != nil {
			return err
		}

		if err := tx.Where("item_id = ?", item.ID).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes: %w", err)
		}

		if err := tx.Where("item_id = ?", item.ID).Delete(&models.ItemImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete item images: %w", err)
		}

		// Soft delete
		if err := tx.Delete(item).Error; err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
}

// AddItemImage attaches an image URL to an item owned by userID.
func (s *ItemService) AddItemImage(ctx context.Context, itemID, userID uint, req *AddItemImageRequest) (*models.ItemImage, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	var image *models.ItemImage
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		item, err := s.authorizationService.AuthorizeItemMutation(ctx, tx, itemID, userID)
		if err != nil {
			return err
		}

		image = &models.ItemImage{ItemID: item.ID, URL: req.URL}
		if err := tx.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create item image: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return image, nil
}
