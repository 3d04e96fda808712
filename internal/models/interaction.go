package models

import "github.com/google/uuid"

// Interaction types recorded against products.
const (
	InteractionView      = "view"
	InteractionClick     = "click"
	InteractionAddToCart = "add_to_cart"
	InteractionWishlist  = "wishlist"
	InteractionPurchase  = "purchase"
)

// UserInteraction records a single touch of a product by a user or an
// anonymous session. Feeds recently-viewed and the personalized
// recommendation composer.
type UserInteraction struct {
	BaseModel
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	SessionID string     `gorm:"index;size:255" json:"session_id"`
	ProductID string     `gorm:"size:50;index" json:"product_id"`
	Type      string     `gorm:"size:20" json:"type"`
}

// ValidInteractionType reports whether t is one of the recorded kinds.
func ValidInteractionType(t string) bool {
	switch t {
	case InteractionView, InteractionClick, InteractionAddToCart, InteractionWishlist, InteractionPurchase:
		return true
	}
	return false
}
