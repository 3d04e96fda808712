package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/moda/internal/models"
)

const (
	// recentWindow bounds which interactions still influence
	// personalization.
	recentWindow = 30 * 24 * time.Hour

	// maxHistoryScan caps how many raw view rows are read before
	// deduplicating into a recently-viewed list.
	maxHistoryScan = 50
)

// InteractionTracker records product interactions and answers history
// queries. Writes are best-effort: they run in the background and only
// log on failure, so tracking can never fail or delay the user action it
// accompanies.
type InteractionTracker struct {
	db *gorm.DB
}

// NewInteractionTracker constructs an InteractionTracker.
func NewInteractionTracker(db *gorm.DB) *InteractionTracker {
	return &InteractionTracker{db: db}
}

// Track records an interaction asynchronously. Unknown types are dropped.
func (t *InteractionTracker) Track(userID *uuid.UUID, sessionID, productID, kind string) {
	if productID == "" || !models.ValidInteractionType(kind) {
		return
	}

	record := models.UserInteraction{
		UserID:    userID,
		SessionID: sessionID,
		ProductID: productID,
		Type:      kind,
	}

	go func() {
		if err := t.db.Create(&record).Error; err != nil {
			log.Printf("[Interactions] failed to record %s for product %s: %v", kind, productID, err)
		}
	}()
}

// RecentlyViewed returns unique products the user (or anonymous session)
// viewed, most recent first.
func (t *InteractionTracker) RecentlyViewed(userID *uuid.UUID, sessionID string, limit int) ([]models.Product, error) {
	return t.recentProducts(userID, sessionID, limit, true)
}

// RecentInteractionProducts returns unique products touched by any
// interaction type inside the recency window, most recent first. This is
// the viewed-history input to the recommendation composer.
func (t *InteractionTracker) RecentInteractionProducts(userID *uuid.UUID, sessionID string, limit int) ([]models.Product, error) {
	return t.recentProducts(userID, sessionID, limit, false)
}

func (t *InteractionTracker) recentProducts(userID *uuid.UUID, sessionID string, limit int, viewsOnly bool) ([]models.Product, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := t.db.Model(&models.UserInteraction{}).
		Where("created_at >= ?", time.Now().Add(-recentWindow))

	switch {
	case userID != nil:
		query = query.Where("user_id = ?", *userID)
	case sessionID != "":
		query = query.Where("session_id = ?", sessionID)
	default:
		return nil, nil
	}

	if viewsOnly {
		query = query.Where("type = ?", models.InteractionView)
	}

	var interactions []models.UserInteraction
	if err := query.Order("created_at desc").Limit(maxHistoryScan).Find(&interactions).Error; err != nil {
		return nil, err
	}

	// Deduplicate in recency order.
	ids := make([]string, 0, limit)
	seen := make(map[string]bool, limit)
	for _, interaction := range interactions {
		if seen[interaction.ProductID] {
			continue
		}
		seen[interaction.ProductID] = true
		ids = append(ids, interaction.ProductID)
		if len(ids) >= limit {
			break
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var products []models.Product
	if err := t.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	// Restore view order lost by the IN query.
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
