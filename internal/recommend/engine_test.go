package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/moda/internal/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "w-dress-1", Name: "Casual Summer Solid Dress", Category: "women", SubCategory: "dresses", Price: 40, Rating: 4.5, Reviews: 120, Sizes: []string{"S", "M"}, Colors: []string{"blue"}},
		{ID: "w-dress-2", Name: "Casual Summer Solid Midi Dress", Category: "women", SubCategory: "dresses", Price: 40, Rating: 4.5, Reviews: 80, Sizes: []string{"M", "L"}, Colors: []string{"white"}},
		{ID: "w-top-1", Name: "Cute Spring Top", Category: "women", SubCategory: "tops", Price: 25, Rating: 4.0, Reviews: 60, Sizes: []string{"S"}, Colors: []string{"pink"}},
		{ID: "w-shoes-1", Name: "Summer Sandals", Category: "women", SubCategory: "shoes", Price: 55, Rating: 4.7, Reviews: 200, Sizes: []string{"38"}, Colors: []string{"beige"}},
		{ID: "w-acc-1", Name: "Straw Hat", Category: "women", SubCategory: "accessories", Price: 15, Rating: 4.1, Reviews: 30, Colors: []string{"natural"}},
		{ID: "m-shirt-1", Name: "Casual Linen Shirt", Category: "men", SubCategory: "shirts", Price: 35, Rating: 4.3, Reviews: 90, Sizes: []string{"M", "L"}, Colors: []string{"white"}},
		{ID: "m-pants-1", Name: "Slim Chino Pants", Category: "men", SubCategory: "pants", Price: 50, Rating: 4.4, Reviews: 110, Sizes: []string{"32"}, Colors: []string{"khaki"}},
		{ID: "unrated", Name: "New Arrival Jacket", Category: "women", SubCategory: "outerwear", Price: 90, Rating: 0, Reviews: 0},
	}
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSimilarProducts(t *testing.T) {
	catalog := testCatalog()
	target := catalog[0]

	t.Run("never returns the target itself", func(t *testing.T) {
		assert.NotContains(t, productIDs(SimilarProducts(target, catalog, 10)), target.ID)
	})

	t.Run("respects the limit", func(t *testing.T) {
		assert.Len(t, SimilarProducts(target, catalog, 2), 2)
	})

	t.Run("the closest sibling dress ranks first", func(t *testing.T) {
		similar := SimilarProducts(target, catalog, 3)
		require.NotEmpty(t, similar)
		assert.Equal(t, "w-dress-2", similar[0].ID)
	})
}

func TestByPreferences(t *testing.T) {
	catalog := testCatalog()

	t.Run("gender filter drops the other gender but keeps accessories", func(t *testing.T) {
		ranked := ByPreferences(catalog, Preferences{Gender: "women"}, -1)
		ids := productIDs(ranked)
		assert.NotContains(t, ids, "m-shirt-1")
		assert.NotContains(t, ids, "m-pants-1")
		assert.Contains(t, ids, "w-acc-1")
	})

	t.Run("matching profile ranks matching products first", func(t *testing.T) {
		prefs := Preferences{
			Gender:          "women",
			Style:           "casual",
			Season:          "summer",
			PreferredSizes:  []string{"M"},
			PreferredColors: []string{"blue"},
		}
		ranked := ByPreferences(catalog, prefs, -1)
		require.NotEmpty(t, ranked)
		assert.Equal(t, "w-dress-1", ranked[0].ID)
	})
}

func TestByLikedProducts(t *testing.T) {
	catalog := testCatalog()

	t.Run("empty liked set falls back to trending", func(t *testing.T) {
		assert.Equal(t,
			productIDs(Trending(catalog, 5)),
			productIDs(ByLikedProducts(nil, catalog, 5)))
	})

	t.Run("liked products are excluded from results", func(t *testing.T) {
		liked := []models.Product{catalog[0]}
		assert.NotContains(t, productIDs(ByLikedProducts(liked, catalog, 10)), catalog[0].ID)
	})
}

func TestPersonalized(t *testing.T) {
	catalog := testCatalog()

	t.Run("no inputs degrades to trending", func(t *testing.T) {
		assert.Equal(t,
			productIDs(Trending(catalog, 5)),
			productIDs(Personalized(nil, catalog, nil, nil, 5)))
	})

	t.Run("never exceeds the limit and never repeats a product", func(t *testing.T) {
		target := catalog[0]
		prefs := Preferences{Gender: "women", Style: "casual"}
		viewed := []models.Product{catalog[2], catalog[3]}

		feed := Personalized(&target, catalog, &prefs, viewed, 5)
		assert.LessOrEqual(t, len(feed), 5)

		seen := map[string]bool{}
		for _, p := range feed {
			assert.False(t, seen[p.ID], "duplicate product %s", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("similar-to-target source leads the feed", func(t *testing.T) {
		target := catalog[0]
		feed := Personalized(&target, catalog, nil, nil, 5)
		require.NotEmpty(t, feed)
		assert.Equal(t, "w-dress-2", feed[0].ID)
	})

	t.Run("trending fills when sources run dry", func(t *testing.T) {
		target := catalog[0]
		feed := Personalized(&target, catalog, nil, nil, 6)
		assert.Len(t, feed, 6)
	})

	t.Run("non-positive limit yields nothing", func(t *testing.T) {
		assert.Empty(t, Personalized(nil, catalog, nil, nil, 0))
	})
}

func TestCompleteLook(t *testing.T) {
	catalog := testCatalog()

	t.Run("dress pairs with accessories and shoes", func(t *testing.T) {
		target := catalog[0]
		look := CompleteLook(&target, catalog, 4)
		ids := productIDs(look)
		assert.Contains(t, ids, "w-acc-1")
		assert.Contains(t, ids, "w-shoes-1")
		assert.NotContains(t, ids, target.ID)
	})

	t.Run("stays within the target category", func(t *testing.T) {
		target := catalog[0]
		for _, p := range CompleteLook(&target, catalog, 6) {
			assert.Equal(t, "women", p.Category)
		}
	})

	t.Run("unmapped subcategory falls back to category neighbors", func(t *testing.T) {
		target := catalog[7] // outerwear has no complement mapping
		look := CompleteLook(&target, catalog, 3)
		for _, p := range look {
			assert.Equal(t, "women", p.Category)
			assert.NotEqual(t, target.SubCategory, p.SubCategory)
		}
		assert.NotEmpty(t, look)
	})

	t.Run("t-shirts resolve through the shirts pairing, deterministically", func(t *testing.T) {
		target := models.Product{ID: "tee-1", Name: "Graphic Tee", Category: "men", SubCategory: "t-shirts", Rating: 4.0}
		menswear := []models.Product{
			target,
			{ID: "tee-2", Name: "Plain Tee", Category: "men", SubCategory: "t-shirts", Rating: 4.9},
			{ID: "pants-1", Name: "Chinos", Category: "men", SubCategory: "pants", Rating: 4.8},
			{ID: "pants-2", Name: "Jeans", Category: "men", SubCategory: "pants", Rating: 4.6},
			{ID: "shoes-1", Name: "Sneakers", Category: "men", SubCategory: "shoes", Rating: 4.5},
			{ID: "shoes-2", Name: "Loafers", Category: "men", SubCategory: "shoes", Rating: 4.4},
			{ID: "acc-1", Name: "Belt", Category: "men", SubCategory: "accessories", Rating: 4.2},
		}

		// "t-shirts" contains the "shirts" fragment, which appears first in
		// the pairing list, so its complements (pants, shoes, accessories)
		// apply and sibling tees stay out.
		want := []string{"pants-1", "pants-2", "shoes-1", "shoes-2", "acc-1"}
		for i := 0; i < 100; i++ {
			assert.Equal(t, want, productIDs(CompleteLook(&target, menswear, 5)))
		}
	})

	t.Run("nil target degrades to trending", func(t *testing.T) {
		assert.Equal(t,
			productIDs(Trending(catalog, 4)),
			productIDs(CompleteLook(nil, catalog, 4)))
	})
}
