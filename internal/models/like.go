// internal/models/like.go
package models

import "time"

// Like records that a user likes an item. The (UserID, ItemID) pair is unique,
// and likes are only ever created or hard-deleted.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_likes_user_item;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Item *Item `json:"item,omitempty" gorm:"foreignKey:ItemID"`
}
