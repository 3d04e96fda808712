package models

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an authenticated customer or administrator.
type User struct {
	BaseModel
	Name          string         `json:"name"`
	Email         string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash  string         `json:"-"`
	Role          string         `gorm:"default:user" json:"role"`
	CartItems     []CartItem     `json:"cart_items,omitempty"`
	WishlistItems []WishlistItem `json:"wishlist_items,omitempty"`
	Orders        []Order        `json:"orders,omitempty"`
}
