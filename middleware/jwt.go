package middleware

import (
	"fmt"
	"strings"
	"time"

	"edemy/config"
	"edemy/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateIdentityToken signs a token in the identity provider's format.
// Used for local development and tests.
func GenerateIdentityToken(userID, name, email, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"name":  name,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
		"publicMetadata": map[string]interface{}{
			"role": role,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.IdentitySecret))
}

// JWTMiddleware verifies the identity provider's bearer token and stores the
// caller's id, role and raw token in the request context
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.IdentitySecret), nil
	})

	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	c.Locals("userId", userID)
	c.Locals("role", roleFromClaims(claims))
	c.Locals("token", tokenString)

	return c.Next()
}

// roleFromClaims reads the role from publicMetadata, falling back to a
// top-level role claim
func roleFromClaims(claims jwt.MapClaims) string {
	if meta, ok := claims["publicMetadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok && role != "" {
			return role
		}
	}
	role, _ := claims["role"].(string)
	return role
}

// IdentityFrom returns the verified caller set by JWTMiddleware
func IdentityFrom(c *fiber.Ctx) (store.Identity, bool) {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return store.Identity{}, false
	}
	role, _ := c.Locals("role").(string)
	token, _ := c.Locals("token").(string)
	return store.Identity{UserID: userID, Role: role, Token: token}, true
}
