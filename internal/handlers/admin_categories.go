package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/moda/internal/models"
)

// CategoryHandler manages the category catalog.
type CategoryHandler struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db, validate: validator.New()}
}

type categorySummary struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// ListCategories returns all categories with their product counts.
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.db.Order("name asc").Find(&categories).Error; err != nil {
		return err
	}

	summaries := make([]categorySummary, 0, len(categories))
	for _, category := range categories {
		var count int64
		if err := h.db.Model(&models.Product{}).
			Where("LOWER(category) = ?", strings.ToLower(category.Slug)).
			Count(&count).Error; err != nil {
			return err
		}
		summaries = append(summaries, categorySummary{Category: category, ProductCount: count})
	}

	return c.JSON(fiber.Map{"success": true, "data": summaries})
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateCategory adds a category. The slug defaults to the lowercased
// name.
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	slug := req.Slug
	if slug == "" {
		slug = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(req.Name)), " ", "-")
	}

	var existing int64
	if err := h.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusConflict, "category already exists")
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.db.Create(&category).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category by slug.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")

	result := h.db.Where("slug = ?", slug).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	}

	return c.JSON(fiber.Map{"success": true})
}
