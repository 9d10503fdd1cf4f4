// internal/models/common.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// All returns every model managed by the migrations, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Store{},
		&Item{},
		&ItemImage{},
		&Like{},
	}
}
