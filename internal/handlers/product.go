package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/utils"
)

// ProductHandler manages catalog browsing and product CRUD.
type ProductHandler struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db, validate: validator.New()}
}

// ListProducts returns paginated products with optional filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	if sub := c.Query("sub_category"); sub != "" {
		query = query.Where("LOWER(sub_category) = ?", strings.ToLower(sub))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", q, q)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if val, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", val)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if val, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", val)
		}
	}
	if featured := c.Query("featured"); featured != "" {
		query = query.Where("featured = ?", featured == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// SearchProducts performs a free-text search over name, description and
// category.
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing search query")
	}

	limit := searchLimit(c.Query("limit"))

	q := "%" + term + "%"
	var products []models.Product
	if err := h.db.
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ? OR sub_category ILIKE ?", q, q, q, q).
		Order("rating desc").
		Limit(limit).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": products})
}

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// searchLimit parses the limit query value, falling back to the default
// and capping oversized requests.
func searchLimit(raw string) int {
	limit := defaultSearchLimit
	if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return limit
}

// GetProduct loads a single product.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productRequest struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Price        float64  `json:"price" validate:"gte=0"`
	SalePrice    *float64 `json:"sale_price"`
	Category     string   `json:"category" validate:"required"`
	SubCategory  string   `json:"sub_category"`
	Images       []string `json:"images"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	Description  string   `json:"description"`
	Featured     bool     `json:"featured"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews      int      `json:"reviews" validate:"gte=0"`
	Stock        int      `json:"stock" validate:"gte=0"`
	StyleTags    []string `json:"style_tags"`
	OccasionTags []string `json:"occasion_tags"`
}

// CreateProduct handles product creation.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", req.ID).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "product already exists")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	product := productFromRequest(req)
	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct replaces an existing product's fields.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.ID = id
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	product := productFromRequest(req)
	product.CreatedAt = existing.CreatedAt
	if err := h.db.Model(&existing).Select("*").Omit("id", "created_at").Updates(product).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product and its dependent rows.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.UserInteraction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func productFromRequest(req productRequest) models.Product {
	return models.Product{
		ID:           req.ID,
		Name:         req.Name,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		Images:       req.Images,
		Colors:       req.Colors,
		Sizes:        req.Sizes,
		Description:  req.Description,
		Featured:     req.Featured,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
		Stock:        req.Stock,
		StyleTags:    req.StyleTags,
		OccasionTags: req.OccasionTags,
	}
}
