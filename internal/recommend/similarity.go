package recommend

import (
	"math"

	"github.com/example/moda/internal/models"
)

// Similarity factor weights. The final score is normalized by the sum of
// weights that actually applied, so pairs with fewer shared attribute
// dimensions are scored against a smaller denominator.
const (
	weightStyle    = 0.3
	weightSeason   = 0.2
	weightCategory = 0.2
	weightPrice    = 0.1
	weightRating   = 0.1
	weightPattern  = 0.1

	relatedStyleCredit = weightStyle / 2
)

// Similarity scores how alike two products are, in [0,1]. A product is
// never similar to itself: identical IDs score 0.
func Similarity(a, b models.Product) float64 {
	if a.ID == b.ID {
		return 0
	}

	attrsA := Extract(a)
	attrsB := Extract(b)

	var earned, applicable float64

	if attrsA.Style != "" && attrsB.Style != "" {
		applicable += weightStyle
		switch {
		case attrsA.Style == attrsB.Style:
			earned += weightStyle
		case stylesRelated(attrsA.Style, attrsB.Style):
			earned += relatedStyleCredit
		}
	}

	if attrsA.Season != "" && attrsB.Season != "" {
		applicable += weightSeason
		if attrsA.Season == attrsB.Season {
			earned += weightSeason
		}
	}

	applicable += weightCategory
	if a.Category == b.Category {
		earned += weightCategory
	}

	applicable += weightPrice
	if maxPrice := math.Max(a.Price, b.Price); maxPrice > 0 {
		earned += (1 - math.Abs(a.Price-b.Price)/maxPrice) * weightPrice
	}

	applicable += weightRating
	ratingGap := math.Abs(a.Rating-b.Rating) / 5
	if ratingGap > 1 {
		ratingGap = 1
	}
	earned += (1 - ratingGap) * weightRating

	if attrsA.PatternType != "" && attrsB.PatternType != "" {
		applicable += weightPattern
		if attrsA.PatternType == attrsB.PatternType {
			earned += weightPattern
		}
	}

	if applicable == 0 {
		return 0
	}
	return earned / applicable
}

// stylesRelated reports whether the two styles form a curated partial
// match, checked in both directions.
func stylesRelated(a, b string) bool {
	for _, related := range relatedStyleTable[a] {
		if related == b {
			return true
		}
	}
	for _, related := range relatedStyleTable[b] {
		if related == a {
			return true
		}
	}
	return false
}
