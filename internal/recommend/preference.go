package recommend

import (
	"strings"

	"github.com/example/moda/internal/models"
)

// Preference factor weights, normalized by applicable weight like the
// similarity scorer. The subcategory bonus deliberately sits outside the
// normalization scheme.
const (
	weightPrefStyle  = 0.25
	weightPrefPrice  = 0.2
	weightPrefSize   = 0.15
	weightPrefColor  = 0.15
	weightPrefSeason = 0.15
	weightPrefRating = 0.1

	subcategoryBonus = 0.05
)

// PriceRange bounds the preferred price, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Preferences describe an explicit shopper profile. Every field is
// optional; absent fields simply do not contribute to the score, and
// nonsensical values (e.g. an inverted price range) are inert rather
// than rejected.
type Preferences struct {
	Gender          string      `json:"gender"`
	Style           string      `json:"style"`
	Season          string      `json:"season"`
	PriceRange      *PriceRange `json:"price_range"`
	PreferredSizes  []string    `json:"preferred_sizes"`
	PreferredColors []string    `json:"preferred_colors"`
	BodyShape       string      `json:"body_shape"`
	FitPreference   string      `json:"fit_preference"`
	StyleAesthetic  string      `json:"style_aesthetic"`
}

// FilterByGender restricts candidates to the preferred gender's category.
// Unisex and accessories items are always gender-agnostic candidates.
func FilterByGender(products []models.Product, gender string) []models.Product {
	if gender == "" {
		return products
	}
	want := strings.ToLower(gender)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		category := strings.ToLower(p.Category)
		if category == want || category == "unisex" || category == "accessories" {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PreferenceScore rates a single product against the profile, in [0,1].
// The gender pre-filter is not applied here; see FilterByGender.
func PreferenceScore(p models.Product, prefs Preferences) float64 {
	attrs := Extract(p)

	var earned, applicable float64

	if prefs.Style != "" && attrs.Style != "" {
		applicable += weightPrefStyle
		if aestheticAllows(prefs.Style, attrs.Style) {
			earned += weightPrefStyle
		}
	}

	// Flat nudge when the shopper's aesthetic and the product subcategory
	// overlap; intentionally not counted into the applicable weight.
	if prefs.StyleAesthetic != "" && p.SubCategory != "" {
		sub := strings.ToLower(p.SubCategory)
		aesthetic := strings.ToLower(prefs.StyleAesthetic)
		if strings.Contains(sub, aesthetic) || strings.Contains(aesthetic, sub) {
			earned += subcategoryBonus
		}
	}

	if pr := prefs.PriceRange; pr != nil && pr.Min <= pr.Max {
		applicable += weightPrefPrice
		switch {
		case p.Price >= pr.Min && p.Price <= pr.Max:
			earned += weightPrefPrice
		case p.Price < pr.Min && pr.Min > 0:
			// Partial credit proportional to proximity, capped at half
			// of the full in-range score.
			earned += (p.Price / pr.Min) * (weightPrefPrice / 2)
		case p.Price > pr.Max && p.Price > 0:
			earned += (pr.Max / p.Price) * (weightPrefPrice / 2)
		}
	}

	if len(prefs.PreferredSizes) > 0 && len(p.Sizes) > 0 {
		applicable += weightPrefSize
		if anySizeMatch(prefs.PreferredSizes, p.Sizes) {
			earned += weightPrefSize
		}
	}

	if len(prefs.PreferredColors) > 0 {
		applicable += weightPrefColor
		if anyColorMatch(prefs.PreferredColors, p.Colors) {
			earned += weightPrefColor
		}
	}

	if prefs.Season != "" && attrs.Season != "" {
		applicable += weightPrefSeason
		if strings.EqualFold(prefs.Season, attrs.Season) {
			earned += weightPrefSeason
		}
	}

	applicable += weightPrefRating
	earned += p.Rating / 5 * weightPrefRating

	if applicable == 0 {
		return 0
	}
	score := earned / applicable
	if score > 1 {
		score = 1
	}
	return score
}

func aestheticAllows(aesthetic, style string) bool {
	for _, allowed := range aestheticStyles[strings.ToLower(aesthetic)] {
		if allowed == style {
			return true
		}
	}
	return false
}

func anySizeMatch(preferred []string, available []string) bool {
	for _, size := range available {
		normalized := strings.ToLower(strings.TrimSpace(size))
		// One-size items fit everyone.
		if normalized == "one-size" || normalized == "one size" {
			return true
		}
		for _, want := range preferred {
			if sizeMatches(want, size) {
				return true
			}
		}
	}
	return false
}

// sizeMatches compares a preferred size against an available one using
// case-insensitive containment plus a canonical alias table
// (s/small, m/medium, l/large, x-s style separators, xxl).
func sizeMatches(preferred, available string) bool {
	a := strings.ToLower(strings.TrimSpace(preferred))
	b := strings.ToLower(strings.TrimSpace(available))
	if a == "" || b == "" {
		return false
	}
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	ca := canonicalSize(a)
	cb := canonicalSize(b)
	return ca != "" && ca == cb
}

// canonicalSize folds alias spellings onto xs/s/m/l/xl/xxl, or returns ""
// when the value is not a recognized letter size.
func canonicalSize(size string) string {
	stripped := strings.NewReplacer("-", "", "_", "", " ", "", ".", "").Replace(size)
	if strings.Contains(stripped, "xxl") {
		return "xxl"
	}
	switch stripped {
	case "xs":
		return "xs"
	case "s", "small":
		return "s"
	case "m", "medium":
		return "m"
	case "l", "large":
		return "l"
	case "xl":
		return "xl"
	}
	return ""
}

func anyColorMatch(preferred []string, available []string) bool {
	for _, want := range preferred {
		w := strings.ToLower(strings.TrimSpace(want))
		if w == "" {
			continue
		}
		for _, color := range available {
			c := strings.ToLower(strings.TrimSpace(color))
			if c == "" {
				continue
			}
			if strings.Contains(c, w) || strings.Contains(w, c) {
				return true
			}
		}
	}
	return false
}
