// internal/services/like_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/marketplace-backend/internal/database"
	"github.com/javajoker/marketplace-backend/internal/metrics"
	"github.com/javajoker/marketplace-backend/internal/models"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		db: db,
	}
}

func likeUserColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}

// ListLikesForItem returns the item's likes, each with the liking user's id
// and username.
func (s *LikeService) ListLikesForItem(ctx context.Context, itemID uint) ([]models.Like, error) {
	db := s.db.WithContext(ctx)
	if err := s.ensureItemExists(db, itemID); err != nil {
		return nil, err
	}

	var likes []models.Like
	if err := db.Where("item_id = ?", itemID).
		Preload("User", likeUserColumns).
		Order("id").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}
	return likes, nil
}

// CreateLike records that userID likes itemID. Repeating the call is a no-op:
// the existing like is returned and created is false.
func (s *LikeService) CreateLike(ctx context.Context, userID, itemID uint) (like *models.Like, created bool, err error) {
	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// A shared lock keeps a concurrent DeleteItem from racing the insert
		if err := s.ensureItemExists(database.ForShare(tx), itemID); err != nil {
			return err
		}

		candidate := &models.Like{UserID: userID, ItemID: itemID}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoNothing: true,
		}).Create(candidate)

		if result.Error != nil && !database.IsUniqueViolation(result.Error) {
			return fmt.Errorf("failed to create like: %w", result.Error)
		}
		if result.Error == nil && result.RowsAffected > 0 {
			like, created = candidate, true
			return nil
		}

		var existing models.Like
		if err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error; err != nil {
			return fmt.Errorf("failed to load existing like: %w", err)
		}
		like = &existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		metrics.LikesCreated.WithLabelValues("created").Inc()
	} else {
		metrics.LikesCreated.WithLabelValues("existing").Inc()
	}
	return like, created, nil
}

// DeleteLike removes userID's like of itemID.
func (s *LikeService) DeleteLike(ctx context.Context, userID, itemID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.Like{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFound("Like")
	}
	return nil
}

// ListLikedItemsForUser returns exactly the items userID has liked, with
// their images, in the order they were liked.
func (s *LikeService) ListLikedItemsForUser(ctx context.Context, userID uint) ([]models.Item, error) {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return nil, NotFound("User")
	}

	var items []models.Item
	if err := db.Joins("JOIN likes ON likes.item_id = items.id AND likes.user_id = ?", userID).
		Preload("ItemImages", orderByID).
		Order("likes.id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch liked items: %w", err)
	}
	return items, nil
}

func (s *LikeService) ensureItemExists(db *gorm.DB, itemID uint) error {
	var item models.Item
	if err := db.Select("id").First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Item")
		}
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}
