package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/utils"
)

// lowStockThreshold marks items that need reordering soon.
const lowStockThreshold = 5

// InventoryHandler serves the admin stock views.
type InventoryHandler struct {
	db *gorm.DB
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

type inventoryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Stock       int    `json:"stock"`
	Status      string `json:"status"`
}

// ListInventory returns stock levels with a derived status per product.
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Product{})
	switch c.Query("status") {
	case "out_of_stock":
		query = query.Where("stock <= 0")
	case "low_stock":
		query = query.Where("stock > 0 AND stock <= ?", lowStockThreshold)
	case "in_stock":
		query = query.Where("stock > ?", lowStockThreshold)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Order("stock asc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&products).Error; err != nil {
		return err
	}

	items := make([]inventoryItem, 0, len(products))
	for _, p := range products {
		items = append(items, inventoryItem{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			SubCategory: p.SubCategory,
			Stock:       p.Stock,
			Status:      stockStatus(p.Stock),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// LowStock lists products at or below the reorder threshold.
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Where("stock <= ?", lowStockThreshold).
		Order("stock asc").
		Find(&products).Error; err != nil {
		return err
	}

	items := make([]inventoryItem, 0, len(products))
	for _, p := range products {
		items = append(items, inventoryItem{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			SubCategory: p.SubCategory,
			Stock:       p.Stock,
			Status:      stockStatus(p.Stock),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": items})
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

// Restock adds stock to a product.
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id := c.Params("id")

	var req restockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be positive")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	product.Stock += req.Quantity
	if err := h.db.Model(&models.Product{}).Where("id = ?", id).
		Update("stock", product.Stock).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"id":     product.ID,
		"stock":  product.Stock,
		"status": stockStatus(product.Stock),
	}})
}

func stockStatus(stock int) string {
	switch {
	case stock <= 0:
		return "out_of_stock"
	case stock <= lowStockThreshold:
		return "low_stock"
	}
	return "in_stock"
}
