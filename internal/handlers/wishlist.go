package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/moda/internal/middleware"
	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/services"
)

// WishlistHandler manages the authenticated user's wishlist.
type WishlistHandler struct {
	db      *gorm.DB
	tracker *services.InteractionTracker
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(db *gorm.DB, tracker *services.InteractionTracker) *WishlistHandler {
	return &WishlistHandler{db: db, tracker: tracker}
}

// List returns the user's saved products.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var items []models.WishlistItem
	if err := h.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Add saves a product to the wishlist; duplicates are rejected.
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID := c.Params("productId")

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var existing models.WishlistItem
	if err := h.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "product already in wishlist")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	item := models.WishlistItem{UserID: userID, ProductID: productID}
	if err := h.db.Create(&item).Error; err != nil {
		return err
	}

	h.tracker.Track(&userID, "", productID, models.InteractionWishlist)

	item.Product = &product
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// Remove deletes a product from the wishlist.
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	result := h.db.Where("user_id = ? AND product_id = ?", userID, c.Params("productId")).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "wishlist item not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
