package recommend

import (
	"math"
	"sort"

	"github.com/example/moda/internal/models"
)

// Popularity is the trending ranking key: rating scaled by the log of the
// review count, so a 4.5-star item with hundreds of reviews outranks a
// 5-star item nobody reviewed.
func Popularity(p models.Product) float64 {
	return p.Rating * math.Log(float64(p.Reviews)+1)
}

// Trending ranks products by Popularity descending. Unrated products are
// excluded. The sort is stable, so equal keys keep their input order.
// A negative limit returns the full ranking.
func Trending(products []models.Product, limit int) []models.Product {
	ranked := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Rating == 0 {
			continue
		}
		ranked = append(ranked, p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Popularity(ranked[i]) > Popularity(ranked[j])
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
