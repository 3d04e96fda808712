package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/example/moda/internal/models"
)

// Share of the personalized result budgeted to each source, applied in
// order with first-source-wins dedupe; trending fills any shortfall.
const (
	shareSimilar       = 0.4
	sharePreference    = 0.3
	shareCollaborative = 0.2
)

type scoredProduct struct {
	product models.Product
	score   float64
}

// rankDescending sorts stably by score descending, dropping zero scores.
func rankDescending(candidates []scoredProduct) []models.Product {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	ranked := make([]models.Product, 0, len(candidates))
	for _, c := range candidates {
		if c.score <= 0 {
			continue
		}
		ranked = append(ranked, c.product)
	}
	return ranked
}

// SimilarProducts returns up to limit catalog items most similar to the
// target, best first. Zero-score items (including the target itself) are
// never returned.
func SimilarProducts(target models.Product, catalog []models.Product, limit int) []models.Product {
	ranked := rankBySimilarity(target, catalog)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func rankBySimilarity(target models.Product, catalog []models.Product) []models.Product {
	candidates := make([]scoredProduct, 0, len(catalog))
	for _, p := range catalog {
		candidates = append(candidates, scoredProduct{p, Similarity(target, p)})
	}
	return rankDescending(candidates)
}

// ByPreferences ranks the catalog against an explicit profile, applying
// the gender pre-filter before scoring.
func ByPreferences(catalog []models.Product, prefs Preferences, limit int) []models.Product {
	ranked := rankByPreferences(catalog, prefs)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func rankByPreferences(catalog []models.Product, prefs Preferences) []models.Product {
	eligible := FilterByGender(catalog, prefs.Gender)
	candidates := make([]scoredProduct, 0, len(eligible))
	for _, p := range eligible {
		candidates = append(candidates, scoredProduct{p, PreferenceScore(p, prefs)})
	}
	return rankDescending(candidates)
}

// ByLikedProducts recommends items by their average similarity to every
// liked product. Items in the liked set are excluded. With nothing liked
// the result falls back entirely to trending.
func ByLikedProducts(liked, catalog []models.Product, limit int) []models.Product {
	if len(liked) == 0 {
		return Trending(catalog, limit)
	}
	ranked := rankByAverageSimilarity(liked, catalog)
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func rankByAverageSimilarity(reference, catalog []models.Product) []models.Product {
	referenceIDs := make(map[string]bool, len(reference))
	for _, p := range reference {
		referenceIDs[p.ID] = true
	}

	candidates := make([]scoredProduct, 0, len(catalog))
	for _, p := range catalog {
		if referenceIDs[p.ID] {
			continue
		}
		var total float64
		for _, ref := range reference {
			total += Similarity(ref, p)
		}
		candidates = append(candidates, scoredProduct{p, total / float64(len(reference))})
	}
	return rankDescending(candidates)
}

// Personalized blends similarity-to-target, preference, viewed-history
// and trending recommendations into one deduplicated list of at most
// limit products. Sources fill fixed proportional budgets in order, each
// skipping products an earlier source already selected. With no target,
// no profile and no history the result equals Trending(catalog, limit).
func Personalized(target *models.Product, catalog []models.Product, prefs *Preferences, viewed []models.Product, limit int) []models.Product {
	if limit <= 0 {
		return nil
	}

	picked := make([]models.Product, 0, limit)
	seen := make(map[string]bool, limit)

	take := func(ranked []models.Product, budget int) {
		for _, p := range ranked {
			if budget <= 0 {
				return
			}
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			picked = append(picked, p)
			budget--
		}
	}

	if target != nil {
		take(rankBySimilarity(*target, catalog), shareOf(limit, shareSimilar))
	}
	if prefs != nil {
		take(rankByPreferences(catalog, *prefs), shareOf(limit, sharePreference))
	}
	if len(viewed) > 0 {
		take(rankByAverageSimilarity(viewed, catalog), shareOf(limit, shareCollaborative))
	}
	if len(picked) < limit {
		take(Trending(catalog, -1), limit-len(picked))
	}

	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}

func shareOf(limit int, fraction float64) int {
	return int(math.Ceil(float64(limit) * fraction))
}

// CompleteLook suggests pieces that pair with the target: complementary
// subcategories within the same category where a mapping exists, and
// otherwise different subcategories of the same category, rating-ranked.
// Without a target it degrades to trending.
func CompleteLook(target *models.Product, catalog []models.Product, limit int) []models.Product {
	if limit <= 0 {
		return nil
	}
	if target == nil {
		return Trending(catalog, limit)
	}

	category := strings.ToLower(target.Category)
	subcategory := normalizeSubcategory(target.SubCategory)

	var complements []string
	for _, pairing := range complementaryLooks[category] {
		if strings.Contains(subcategory, pairing.fragment) {
			complements = pairing.complements
			break
		}
	}

	picked := make([]models.Product, 0, limit)
	seen := map[string]bool{target.ID: true}

	if len(complements) == 0 {
		for _, p := range sameCategoryByRating(*target, catalog) {
			if len(picked) >= limit {
				break
			}
			if seen[p.ID] || p.SubCategory == target.SubCategory {
				continue
			}
			seen[p.ID] = true
			picked = append(picked, p)
		}
		return picked
	}

	ranked := sameCategoryByRating(*target, catalog)
	for _, complement := range complements {
		added := 0
		for _, p := range ranked {
			// At most two picks per complementary subcategory keeps the
			// look varied.
			if added >= 2 || len(picked) >= limit {
				break
			}
			if seen[p.ID] || !strings.Contains(normalizeSubcategory(p.SubCategory), complement) {
				continue
			}
			seen[p.ID] = true
			picked = append(picked, p)
			added++
		}
		if len(picked) >= limit {
			break
		}
	}

	// Backfill from the rest of the category.
	for _, p := range ranked {
		if len(picked) >= limit {
			break
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		picked = append(picked, p)
	}

	return picked
}

func sameCategoryByRating(target models.Product, catalog []models.Product) []models.Product {
	matches := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.ID == target.ID || !strings.EqualFold(p.Category, target.Category) {
			continue
		}
		matches = append(matches, p)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Rating > matches[j].Rating
	})
	return matches
}

func normalizeSubcategory(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, "_", "-")
}
