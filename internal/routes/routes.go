package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/moda/internal/config"
	"github.com/example/moda/internal/handlers"
	"github.com/example/moda/internal/middleware"
	"github.com/example/moda/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	tracker := services.NewInteractionTracker(db)

	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db, tracker)
	wishlistHandler := handlers.NewWishlistHandler(db, tracker)
	orderHandler := handlers.NewOrderHandler(db, tracker)
	recommendationHandler := handlers.NewRecommendationHandler(db, tracker)
	categoryHandler := handlers.NewCategoryHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Public catalog
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/search", productHandler.SearchProducts)
	products.Get("/:id", productHandler.GetProduct)

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.ListCategories)

	// Recommendations serve guests and logged-in users alike.
	recommendations := api.Group("/recommendations", middleware.OptionalAuth(cfg))
	recommendations.Post("/track", recommendationHandler.TrackInteraction)
	recommendations.Get("/trending", recommendationHandler.Trending)
	recommendations.Get("/personalized", recommendationHandler.Personalized)
	recommendations.Post("/by-preferences", recommendationHandler.ByPreferences)
	recommendations.Get("/recently-viewed", recommendationHandler.RecentlyViewed)
	recommendations.Get("/for-product/:id", recommendationHandler.ForProduct)
	recommendations.Get("/complete-look/:id", recommendationHandler.CompleteLook)
	recommendations.Get("/by-liked", middleware.AuthMiddleware(cfg), recommendationHandler.ByLiked)

	// Authenticated storefront
	authenticated := api.Group("", middleware.AuthMiddleware(cfg))

	cart := authenticated.Group("/cart")
	cart.Get("/", cartHandler.ListItems)
	cart.Post("/", cartHandler.AddItem)
	cart.Put("/:id", cartHandler.UpdateItem)
	cart.Delete("/:id", cartHandler.RemoveItem)
	cart.Delete("/", cartHandler.Clear)

	wishlist := authenticated.Group("/wishlist")
	wishlist.Get("/", wishlistHandler.List)
	wishlist.Post("/:productId", wishlistHandler.Add)
	wishlist.Delete("/:productId", wishlistHandler.Remove)

	orders := authenticated.Group("/orders")
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/:id", orderHandler.GetOrder)

	// Admin
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)
	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Get("/inventory", inventoryHandler.ListInventory)
	admin.Get("/inventory/low-stock", inventoryHandler.LowStock)
	admin.Post("/inventory/:id/restock", inventoryHandler.Restock)
	admin.Post("/categories", categoryHandler.CreateCategory)
	admin.Delete("/categories/:slug", categoryHandler.DeleteCategory)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
