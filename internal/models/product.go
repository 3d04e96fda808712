package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a catalog item. IDs are opaque strings supplied by the
// catalog feed and stay stable across imports, so the table does not use
// the generated-uuid BaseModel.
type Product struct {
	ID           string         `gorm:"primaryKey;size:50" json:"id"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	SalePrice    *float64       `json:"sale_price"`
	Category     string         `gorm:"index;size:50" json:"category"`
	SubCategory  string         `gorm:"index;size:50" json:"sub_category"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	Colors       pq.StringArray `gorm:"type:text[]" json:"colors"`
	Sizes        pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Description  string         `gorm:"type:text" json:"description"`
	Featured     bool           `json:"featured"`
	Rating       float64        `json:"rating"`
	Reviews      int            `json:"reviews"`
	Stock        int            `json:"stock"`
	StyleTags    pq.StringArray `gorm:"type:text[]" json:"style_tags"`
	OccasionTags pq.StringArray `gorm:"type:text[]" json:"occasion_tags"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Category is a persisted product category for the admin dashboard.
type Category struct {
	BaseModel
	Name        string `json:"name"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
}
