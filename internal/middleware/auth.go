package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/moda/internal/config"
	"github.com/example/moda/internal/models"
	"github.com/example/moda/internal/utils"
)

const (
	userContextKey = "currentUserID"
	roleContextKey = "currentUserRole"
)

// AuthMiddleware validates bearer tokens and loads the authenticated
// identity into the request context. Expired tokens get a distinct
// message so clients can re-authenticate instead of retrying.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, status := utils.ValidateToken(cfg.JWTSecret, parts[1])
		switch status {
		case utils.TokenValid:
		case utils.TokenExpired:
			return fiber.NewError(fiber.StatusUnauthorized, "token expired")
		default:
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, claims.UserID)
		c.Locals(roleContextKey, claims.Role)
		return c.Next()
	}
}

// OptionalAuth loads the identity when a valid bearer token is present
// and lets the request through anonymously otherwise. Used on routes
// that personalize for logged-in users but also serve guests.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}

		if claims, status := utils.ValidateToken(cfg.JWTSecret, parts[1]); status == utils.TokenValid {
			c.Locals(userContextKey, claims.UserID)
			c.Locals(roleContextKey, claims.Role)
		}
		return c.Next()
	}
}

// RequireAdmin allows only tokens carrying the admin role. Must run after
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(roleContextKey).(string)
		if role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}
