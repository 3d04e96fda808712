package models

import "github.com/google/uuid"

// CartItem is one product/size/color line in a user's cart.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ProductID string    `gorm:"size:50;index" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Size      string    `gorm:"size:20" json:"size"`
	Color     string    `gorm:"size:50" json:"color"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
}

// WishlistItem marks a product saved by a user.
type WishlistItem struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ProductID string    `gorm:"size:50;index" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
}
