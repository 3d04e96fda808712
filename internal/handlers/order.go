package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/moda/internal/middleware"
	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/services"
	"github.com/example/moda/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	db      *gorm.DB
	tracker *services.InteractionTracker
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, tracker *services.InteractionTracker) *OrderHandler {
	return &OrderHandler{db: db, tracker: tracker}
}

type orderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	Email           string             `json:"email"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	Items           []orderItemRequest `json:"items"`
	ClearCart       bool               `json:"clear_cart"`
}

// CreateOrder places an order for the authenticated user, snapshotting
// product data into order items and decrementing stock.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "order has no items")
	}

	order := models.Order{
		UserID:          userID,
		OrderNumber:     generateOrderNumber(),
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Status:          models.OrderPending,
		PlacedAt:        time.Now(),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, line := range req.Items {
			if line.Quantity <= 0 {
				line.Quantity = 1
			}

			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fiber.NewError(fiber.StatusBadRequest, "unknown product "+line.ProductID)
				}
				return err
			}

			price := line.Price
			if price == 0 {
				price = product.Price
				if product.SalePrice != nil && *product.SalePrice > 0 {
					price = *product.SalePrice
				}
			}

			image := ""
			if len(product.Images) > 0 {
				image = product.Images[0]
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				Price:     price,
				Size:      line.Size,
				Color:     line.Color,
				Image:     image,
			})
			total += price * float64(line.Quantity)

			if product.Stock > 0 {
				newStock := product.Stock - line.Quantity
				if newStock < 0 {
					newStock = 0
				}
				if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
					Update("stock", newStock).Error; err != nil {
					return err
				}
			}
		}

		order.Total = total
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if req.ClearCart {
			if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	for _, item := range order.Items {
		h.tracker.Track(&userID, "", item.ProductID, models.InteractionPurchase)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// ListOrders returns orders for the authenticated user.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("user_id = ?", userID).Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order for the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an order through its lifecycle. Admin only.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !validOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if !validTransition(order.Status, req.Status) {
		return fiber.NewError(fiber.StatusBadRequest,
			"cannot move order from "+order.Status+" to "+req.Status)
	}

	order.Status = req.Status
	if err := h.db.Save(&order).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

func validOrderStatus(status string) bool {
	switch status {
	case models.OrderPending, models.OrderProcessing, models.OrderShipped,
		models.OrderDelivered, models.OrderCancelled:
		return true
	}
	return false
}

// validTransition enforces the order lifecycle: Pending -> Processing ->
// Shipped -> Delivered, with Cancelled reachable from any non-terminal
// state. Delivered and Cancelled are terminal.
func validTransition(from, to string) bool {
	if to == models.OrderCancelled {
		return from != models.OrderDelivered && from != models.OrderCancelled
	}
	switch from {
	case models.OrderPending:
		return to == models.OrderProcessing
	case models.OrderProcessing:
		return to == models.OrderShipped
	case models.OrderShipped:
		return to == models.OrderDelivered
	}
	return false
}

func generateOrderNumber() string {
	return fmt.Sprintf("#%d", time.Now().UnixNano()%1000000000)
}
