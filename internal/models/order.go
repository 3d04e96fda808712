package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses move Pending -> Processing -> Shipped -> Delivered,
// with Cancelled reachable from any non-terminal state.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

type Order struct {
	BaseModel
	UserID          uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	OrderNumber     string      `gorm:"uniqueIndex" json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	Email           string      `json:"email"`
	Status          string      `gorm:"default:Pending" json:"status"`
	PlacedAt        time.Time   `json:"placed_at"`
	Total           float64     `json:"total"`
	ShippingAddress string      `gorm:"type:text" json:"shipping_address"`
	PaymentMethod   string      `gorm:"size:50" json:"payment_method"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the product at purchase time so later catalog edits
// do not rewrite order history.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID string    `gorm:"size:50" json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Size      string    `gorm:"size:20" json:"size"`
	Color     string    `gorm:"size:50" json:"color"`
	Image     string    `json:"image"`
}
