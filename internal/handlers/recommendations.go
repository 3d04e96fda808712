package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/moda/internal/middleware"
	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/recommend"
	"github.com/example/moda/internal/services"
)

const defaultRecommendationLimit = 8

// RecommendationHandler serves product recommendations computed over an
// in-memory catalog snapshot.
type RecommendationHandler struct {
	db      *gorm.DB
	tracker *services.InteractionTracker
}

// NewRecommendationHandler constructs RecommendationHandler.
func NewRecommendationHandler(db *gorm.DB, tracker *services.InteractionTracker) *RecommendationHandler {
	return &RecommendationHandler{db: db, tracker: tracker}
}

type trackRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// TrackInteraction records a product interaction. Works for anonymous
// sessions as well as logged-in users.
func (h *RecommendationHandler) TrackInteraction(c *fiber.Ctx) error {
	var req trackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ProductID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
	}
	if !models.ValidInteractionType(req.Type) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid interaction type")
	}

	var exists int64
	if err := h.db.Model(&models.Product{}).Where("id = ?", req.ProductID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	h.tracker.Track(currentUserPtr(c), req.SessionID, req.ProductID, req.Type)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"success": true})
}

// ForProduct returns products most similar to the given one.
func (h *RecommendationHandler) ForProduct(c *fiber.Ctx) error {
	target, catalog, err := h.loadTargetAndCatalog(c.Params("id"))
	if err != nil {
		return err
	}

	limit := parseLimit(c)
	similar := recommend.SimilarProducts(*target, catalog, limit)
	return c.JSON(fiber.Map{"success": true, "data": similar})
}

// Personalized blends similar, preference-matched, history-based and
// trending products into one feed. All inputs are optional.
func (h *RecommendationHandler) Personalized(c *fiber.Ctx) error {
	catalog, err := h.loadCatalog()
	if err != nil {
		return err
	}

	var target *models.Product
	if id := c.Query("product_id"); id != "" {
		for i := range catalog {
			if catalog[i].ID == id {
				target = &catalog[i]
				break
			}
		}
	}

	prefs := preferencesFromQuery(c)

	var viewed []models.Product
	userID := currentUserPtr(c)
	sessionID := c.Query("session_id")
	if userID != nil || sessionID != "" {
		viewed, err = h.tracker.RecentInteractionProducts(userID, sessionID, 10)
		if err != nil {
			return err
		}
	}

	limit := parseLimit(c)
	feed := recommend.Personalized(target, catalog, prefs, viewed, limit)
	return c.JSON(fiber.Map{"success": true, "data": feed})
}

// ByPreferences ranks the catalog against an explicit profile posted as
// JSON.
func (h *RecommendationHandler) ByPreferences(c *fiber.Ctx) error {
	var prefs recommend.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	catalog, err := h.loadCatalog()
	if err != nil {
		return err
	}

	limit := parseLimit(c)
	ranked := recommend.ByPreferences(catalog, prefs, limit)
	return c.JSON(fiber.Map{"success": true, "data": ranked})
}

// Trending returns the rating-and-review-volume ranking.
func (h *RecommendationHandler) Trending(c *fiber.Ctx) error {
	catalog, err := h.loadCatalog()
	if err != nil {
		return err
	}

	limit := parseLimit(c)
	return c.JSON(fiber.Map{"success": true, "data": recommend.Trending(catalog, limit)})
}

// RecentlyViewed returns the caller's unique recent product views, most
// recent first.
func (h *RecommendationHandler) RecentlyViewed(c *fiber.Ctx) error {
	userID := currentUserPtr(c)
	sessionID := c.Query("session_id")
	if userID == nil && sessionID == "" {
		return c.JSON(fiber.Map{"success": true, "data": []models.Product{}})
	}

	limit := parseLimit(c)
	products, err := h.tracker.RecentlyViewed(userID, sessionID, limit)
	if err != nil {
		return err
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(fiber.Map{"success": true, "data": products})
}

// ByLiked recommends products by average similarity to the caller's
// wishlist, falling back to trending for an empty wishlist.
func (h *RecommendationHandler) ByLiked(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var items []models.WishlistItem
	if err := h.db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return err
	}

	liked := make([]models.Product, 0, len(items))
	for _, item := range items {
		if item.Product != nil {
			liked = append(liked, *item.Product)
		}
	}

	catalog, err := h.loadCatalog()
	if err != nil {
		return err
	}

	limit := parseLimit(c)
	return c.JSON(fiber.Map{"success": true, "data": recommend.ByLikedProducts(liked, catalog, limit)})
}

// CompleteLook suggests complementary pieces for an outfit around the
// given product.
func (h *RecommendationHandler) CompleteLook(c *fiber.Ctx) error {
	target, catalog, err := h.loadTargetAndCatalog(c.Params("id"))
	if err != nil {
		return err
	}

	limit := parseLimit(c)
	look := recommend.CompleteLook(target, catalog, limit)
	return c.JSON(fiber.Map{"success": true, "data": look})
}

func (h *RecommendationHandler) loadCatalog() ([]models.Product, error) {
	var catalog []models.Product
	if err := h.db.Find(&catalog).Error; err != nil {
		return nil, err
	}
	return catalog, nil
}

func (h *RecommendationHandler) loadTargetAndCatalog(id string) (*models.Product, []models.Product, error) {
	if id == "" {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "product id is required")
	}

	catalog, err := h.loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], catalog, nil
		}
	}
	return nil, nil, fiber.NewError(fiber.StatusNotFound, "product not found")
}

// preferencesFromQuery builds a profile from query parameters. Returns
// nil when no preference parameter is present so the composer can skip
// the preference source entirely.
func preferencesFromQuery(c *fiber.Ctx) *recommend.Preferences {
	prefs := recommend.Preferences{
		Gender:         c.Query("gender"),
		Style:          c.Query("style"),
		Season:         c.Query("season"),
		BodyShape:      c.Query("body_shape"),
		FitPreference:  c.Query("fit_preference"),
		StyleAesthetic: c.Query("style_aesthetic"),
	}

	minPrice, minErr := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, maxErr := strconv.ParseFloat(c.Query("max_price"), 64)
	if minErr == nil || maxErr == nil {
		pr := &recommend.PriceRange{}
		if minErr == nil {
			pr.Min = minPrice
		}
		if maxErr == nil {
			pr.Max = maxPrice
		} else {
			pr.Max = 1e12
		}
		prefs.PriceRange = pr
	}

	prefs.PreferredSizes = splitCSVParam(c.Query("sizes"))
	prefs.PreferredColors = splitCSVParam(c.Query("colors"))

	empty := prefs.Gender == "" && prefs.Style == "" && prefs.Season == "" &&
		prefs.BodyShape == "" && prefs.FitPreference == "" && prefs.StyleAesthetic == "" &&
		prefs.PriceRange == nil && len(prefs.PreferredSizes) == 0 && len(prefs.PreferredColors) == 0
	if empty {
		return nil
	}
	return &prefs
}

func splitCSVParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func parseLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return defaultRecommendationLimit
	}
	if limit > 50 {
		limit = 50
	}
	return limit
}

// currentUserPtr returns the authenticated user ID or nil for anonymous
// requests.
func currentUserPtr(c *fiber.Ctx) *uuid.UUID {
	if id, ok := middleware.GetCurrentUserID(c); ok {
		return &id
	}
	return nil
}
