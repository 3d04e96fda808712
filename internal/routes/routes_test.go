package routes

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/example/moda/internal/config"
)

func registeredApp() *fiber.App {
	app := fiber.New()
	// Registration only wires handlers; no queries run until a request.
	Register(app, &gorm.DB{}, &config.Config{JWTSecret: "test-secret"})
	return app
}

func hasRoute(app *fiber.App, method, path string) bool {
	// Group roots may register with a trailing slash.
	want := strings.TrimSuffix(path, "/")
	for _, route := range app.GetRoutes(true) {
		if route.Method == method && strings.TrimSuffix(route.Path, "/") == want {
			return true
		}
	}
	return false
}

func TestRegister(t *testing.T) {
	app := registeredApp()

	t.Run("wishlist add and remove carry the product id segment", func(t *testing.T) {
		// The handlers read c.Params("productId"); the route must declare
		// that exact parameter or every lookup sees an empty id.
		assert.True(t, hasRoute(app, fiber.MethodPost, "/api/wishlist/:productId"))
		assert.True(t, hasRoute(app, fiber.MethodDelete, "/api/wishlist/:productId"))
	})

	t.Run("storefront surface is mounted", func(t *testing.T) {
		for _, route := range []struct{ method, path string }{
			{fiber.MethodPost, "/api/auth/signup"},
			{fiber.MethodPost, "/api/auth/login"},
			{fiber.MethodGet, "/api/products"},
			{fiber.MethodGet, "/api/products/search"},
			{fiber.MethodGet, "/api/products/:id"},
			{fiber.MethodGet, "/api/wishlist"},
			{fiber.MethodPost, "/api/cart"},
			{fiber.MethodPost, "/api/orders"},
			{fiber.MethodGet, "/api/recommendations/trending"},
			{fiber.MethodGet, "/api/recommendations/for-product/:id"},
			{fiber.MethodGet, "/api/recommendations/complete-look/:id"},
			{fiber.MethodPut, "/api/admin/orders/:id/status"},
			{fiber.MethodPost, "/api/admin/inventory/:id/restock"},
		} {
			assert.True(t, hasRoute(app, route.method, route.path), "%s %s not registered", route.method, route.path)
		}
	})
}
