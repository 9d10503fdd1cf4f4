// internal/models/item.go
package models

type Item struct {
	BaseModel
	StoreID     uint    `json:"store_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	Quantity    *int    `json:"quantity"`

	// Relationships
	ItemImages []ItemImage `json:"item_images,omitempty" gorm:"foreignKey:ItemID"`
}

// ItemImage holds the URL of an already stored image; storage itself lives elsewhere.
type ItemImage struct {
	BaseModel
	ItemID uint   `json:"item_id" gorm:"not null;index"`
	URL    string `json:"url" gorm:"type:text;not null"`
}
