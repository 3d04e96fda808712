package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/moda/internal/models"
)

func TestSimilarity(t *testing.T) {
	t.Run("a product is not similar to itself", func(t *testing.T) {
		p := models.Product{ID: "p1", Name: "Casual Summer Dress", Price: 40, Rating: 4}
		assert.Zero(t, Similarity(p, p))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := models.Product{ID: "a", Name: "Sexy Party Dress", Category: "women", Price: 60, Rating: 4.5}
		b := models.Product{ID: "b", Name: "Vintage Floral Skirt", Category: "women", Price: 35, Rating: 4.0}
		assert.Equal(t, Similarity(a, b), Similarity(b, a))
	})

	t.Run("score stays within zero and one", func(t *testing.T) {
		products := []models.Product{
			{ID: "a", Name: "Casual Summer Solid Dress", Category: "women", Price: 20, Rating: 4},
			{ID: "b", Name: "Sexy Winter Party Gown", Category: "women", Price: 200, Rating: 2},
			{ID: "c", Name: "Plain Thing", Category: "men", Price: 0, Rating: 0},
		}
		for _, a := range products {
			for _, b := range products {
				score := Similarity(a, b)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	})

	t.Run("identical attributes score a perfect match", func(t *testing.T) {
		a := models.Product{ID: "a", Name: "Casual Summer Solid Dress", Category: "women", Price: 50, Rating: 4}
		b := models.Product{ID: "b", Name: "Casual Summer Solid Skirt", Category: "women", Price: 50, Rating: 4}
		assert.InDelta(t, 1.0, Similarity(a, b), 1e-9)
	})

	t.Run("closer catalog neighbor ranks above a distant one", func(t *testing.T) {
		target := models.Product{ID: "a", Name: "Casual Summer Dress", Category: "women", Price: 40, Rating: 4.5}
		near := models.Product{ID: "b", Name: "Casual Summer Skirt", Category: "women", Price: 45, Rating: 4.3}
		far := models.Product{ID: "c", Name: "Sexy Winter Gown", Category: "men", Price: 300, Rating: 2.0}

		assert.Greater(t, Similarity(target, near), Similarity(target, far))
	})

	t.Run("related styles earn half credit", func(t *testing.T) {
		// vintage and bohemian are a curated related pair; identical
		// otherwise, so the pairs differ only in the style factor.
		exact := Similarity(
			models.Product{ID: "a", Name: "Vintage Summer Solid Dress", Category: "women", Price: 50, Rating: 4},
			models.Product{ID: "b", Name: "Vintage Summer Solid Top", Category: "women", Price: 50, Rating: 4},
		)
		related := Similarity(
			models.Product{ID: "a", Name: "Vintage Summer Solid Dress", Category: "women", Price: 50, Rating: 4},
			models.Product{ID: "c", Name: "Bohemian Summer Solid Top", Category: "women", Price: 50, Rating: 4},
		)
		unrelated := Similarity(
			models.Product{ID: "a", Name: "Vintage Summer Solid Dress", Category: "women", Price: 50, Rating: 4},
			models.Product{ID: "d", Name: "Party Summer Solid Top", Category: "women", Price: 50, Rating: 4},
		)

		assert.Greater(t, exact, related)
		assert.Greater(t, related, unrelated)
	})

	t.Run("season factor skipped when either side has no season", func(t *testing.T) {
		// Neither product names a season, so only category, price, rating
		// and pattern weigh in; everything else matching still yields 1.
		a := models.Product{ID: "a", Name: "Casual Solid Dress", Category: "women", Price: 50, Rating: 4}
		b := models.Product{ID: "b", Name: "Casual Solid Top", Category: "women", Price: 50, Rating: 4}
		assert.InDelta(t, 1.0, Similarity(a, b), 1e-9)
	})

	t.Run("price proximity scales with relative gap", func(t *testing.T) {
		base := models.Product{ID: "a", Name: "Casual Dress", Category: "women", Price: 100, Rating: 4}
		near := models.Product{ID: "b", Name: "Casual Top", Category: "women", Price: 90, Rating: 4}
		far := models.Product{ID: "c", Name: "Casual Top", Category: "women", Price: 10, Rating: 4}

		assert.Greater(t, Similarity(base, near), Similarity(base, far))
	})

	t.Run("both prices zero earns no price credit", func(t *testing.T) {
		a := models.Product{ID: "a", Name: "Casual Solid Dress", Category: "women", Rating: 4}
		b := models.Product{ID: "b", Name: "Casual Solid Top", Category: "women", Rating: 4}
		assert.Less(t, Similarity(a, b), 1.0)
	})
}
