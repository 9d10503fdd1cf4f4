// internal/models/store.go
package models

type Store struct {
	BaseModel
	OwnerID     uint   `json:"owner_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Location    string `json:"location" gorm:"size:255"`

	// Relationships
	Items []Item `json:"items,omitempty" gorm:"foreignKey:StoreID"`
}
