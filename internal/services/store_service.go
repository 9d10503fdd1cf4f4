// internal/services/store_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/models"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

type StoreService struct {
	db *gorm.DB
}

type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"max=255"`
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{
		db: db,
	}
}

func (s *StoreService) CreateStore(ctx context.Context, ownerID uint, req *CreateStoreRequest) (*models.Store, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	store := &models.Store{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.db.WithContext(ctx).Create(store).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

// GetStore returns the store with its items and their images.
func (s *StoreService) GetStore(ctx context.Context, id uint) (*models.Store, error) {
	var store models.Store
	if err := s.db.WithContext(ctx).
		Preload("Items", orderByID).
		Preload("Items.ItemImages", orderByID).
		First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Store")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &store, nil
}

func (s *StoreService) GetStoresByOwner(ctx context.Context, ownerID uint) ([]models.Store, error) {
	var stores []models.Store
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Preload("Items", orderByID).
		Order("id").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}
	return stores, nil
}
