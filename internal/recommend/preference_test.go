package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/moda/internal/models"
)

func TestFilterByGender(t *testing.T) {
	catalog := []models.Product{
		{ID: "w1", Category: "women"},
		{ID: "m1", Category: "men"},
		{ID: "u1", Category: "Unisex"},
		{ID: "a1", Category: "Accessories"},
	}

	t.Run("empty gender keeps everything", func(t *testing.T) {
		assert.Len(t, FilterByGender(catalog, ""), 4)
	})

	t.Run("keeps the gender plus unisex and accessories", func(t *testing.T) {
		filtered := FilterByGender(catalog, "Women")
		ids := make([]string, 0, len(filtered))
		for _, p := range filtered {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"w1", "u1", "a1"}, ids)
	})
}

func TestPreferenceScore(t *testing.T) {
	t.Run("score stays within zero and one", func(t *testing.T) {
		p := models.Product{
			ID:          "p1",
			Name:        "Casual Summer Dress",
			Category:    "women",
			SubCategory: "casual-dresses",
			Price:       45,
			Rating:      4.6,
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"navy blue", "white"},
		}
		prefs := Preferences{
			Style:           "casual",
			Season:          "summer",
			PriceRange:      &PriceRange{Min: 30, Max: 60},
			PreferredSizes:  []string{"m"},
			PreferredColors: []string{"blue"},
			StyleAesthetic:  "casual",
		}
		score := PreferenceScore(p, prefs)
		assert.Greater(t, score, 0.9)
		assert.LessOrEqual(t, score, 1.0)
	})

	t.Run("aesthetic label admits its mapped styles", func(t *testing.T) {
		minimal := Preferences{Style: "minimal"}
		casualProduct := models.Product{ID: "a", Name: "Casual Tee", Rating: 4}
		sexyProduct := models.Product{ID: "b", Name: "Sexy Gown", Rating: 4}

		assert.Greater(t, PreferenceScore(casualProduct, minimal), PreferenceScore(sexyProduct, minimal))
	})

	t.Run("in-range price beats out-of-range price", func(t *testing.T) {
		prefs := Preferences{PriceRange: &PriceRange{Min: 20, Max: 50}}
		inRange := models.Product{ID: "a", Name: "Dress", Price: 35, Rating: 4}
		above := models.Product{ID: "b", Name: "Dress", Price: 120, Rating: 4}

		assert.Greater(t, PreferenceScore(inRange, prefs), PreferenceScore(above, prefs))
	})

	t.Run("out-of-range price still earns partial credit", func(t *testing.T) {
		prefs := Preferences{PriceRange: &PriceRange{Min: 20, Max: 50}}
		nearMiss := models.Product{ID: "a", Name: "Dress", Price: 55}
		wayOff := models.Product{ID: "b", Name: "Dress", Price: 500}

		assert.Greater(t, PreferenceScore(nearMiss, prefs), PreferenceScore(wayOff, prefs))
	})

	t.Run("inverted price range is ignored", func(t *testing.T) {
		inverted := Preferences{PriceRange: &PriceRange{Min: 50, Max: 20}}
		none := Preferences{}
		p := models.Product{ID: "a", Name: "Dress", Price: 35, Rating: 4}

		assert.Equal(t, PreferenceScore(p, none), PreferenceScore(p, inverted))
	})

	t.Run("one-size products fit any size preference", func(t *testing.T) {
		prefs := Preferences{PreferredSizes: []string{"XL"}}
		oneSize := models.Product{ID: "a", Name: "Scarf", Sizes: []string{"One-Size"}}
		wrongSize := models.Product{ID: "b", Name: "Scarf", Sizes: []string{"XS"}}

		assert.Greater(t, PreferenceScore(oneSize, prefs), PreferenceScore(wrongSize, prefs))
	})

	t.Run("size aliases match across spellings", func(t *testing.T) {
		prefs := Preferences{PreferredSizes: []string{"medium"}}
		p := models.Product{ID: "a", Name: "Top", Sizes: []string{"M"}}
		other := models.Product{ID: "b", Name: "Top", Sizes: []string{"XS"}}

		assert.Greater(t, PreferenceScore(p, prefs), PreferenceScore(other, prefs))
	})

	t.Run("color matches on substring either direction", func(t *testing.T) {
		prefs := Preferences{PreferredColors: []string{"blue"}}
		match := models.Product{ID: "a", Name: "Top", Colors: []string{"Navy Blue"}}
		miss := models.Product{ID: "b", Name: "Top", Colors: []string{"Red"}}

		assert.Greater(t, PreferenceScore(match, prefs), PreferenceScore(miss, prefs))
	})

	t.Run("rating always contributes", func(t *testing.T) {
		empty := Preferences{}
		rated := models.Product{ID: "a", Name: "Top", Rating: 5}
		unrated := models.Product{ID: "b", Name: "Top"}

		assert.InDelta(t, 1.0, PreferenceScore(rated, empty), 1e-9)
		assert.Zero(t, PreferenceScore(unrated, empty))
	})

	t.Run("subcategory bonus lifts but never exceeds one", func(t *testing.T) {
		prefs := Preferences{StyleAesthetic: "casual"}
		p := models.Product{ID: "a", Name: "Tee", SubCategory: "casual-tops", Rating: 5}

		score := PreferenceScore(p, prefs)
		assert.InDelta(t, 1.0, score, 1e-9)
	})
}
