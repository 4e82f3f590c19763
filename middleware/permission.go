package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that only lets callers whose verified
// token carries the given role through
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}
		if id.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
		return c.Next()
	}
}
