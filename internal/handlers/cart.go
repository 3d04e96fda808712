package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/moda/internal/middleware"
	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/services"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	db      *gorm.DB
	tracker *services.InteractionTracker
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(db *gorm.DB, tracker *services.InteractionTracker) *CartHandler {
	return &CartHandler{db: db, tracker: tracker}
}

// ListItems returns the user's cart contents.
func (h *CartHandler) ListItems(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var items []models.CartItem
	if err := h.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": items})
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// AddItem puts a product into the cart, merging with an existing line for
// the same product/size/color.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ProductID == "" || req.Size == "" || req.Color == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var item models.CartItem
	err := h.db.Where("user_id = ? AND product_id = ? AND size = ? AND color = ?",
		userID, req.ProductID, req.Size, req.Color).First(&item).Error
	switch err {
	case nil:
		item.Quantity += req.Quantity
		if err := h.db.Save(&item).Error; err != nil {
			return err
		}
	case gorm.ErrRecordNotFound:
		item = models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			Size:      req.Size,
			Color:     req.Color,
			Quantity:  req.Quantity,
		}
		if err := h.db.Create(&item).Error; err != nil {
			return err
		}
	default:
		return err
	}

	h.tracker.Track(&userID, "", req.ProductID, models.InteractionAddToCart)

	item.Product = &product
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem changes the quantity of a cart line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be positive")
	}

	var item models.CartItem
	if err := h.db.First(&item, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "cart item not found")
		}
		return err
	}

	item.Quantity = req.Quantity
	if err := h.db.Save(&item).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// RemoveItem deletes one cart line.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	result := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Clear empties the user's cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
