package middleware

import (
	"log"
	"strings"

	"edemy/store"

	"github.com/gofiber/fiber/v2"
)

// OptionalJWT verifies a bearer token when one is sent and lets anonymous
// requests through untouched
func OptionalJWT(c *fiber.Ctx) error {
	if strings.TrimSpace(c.Get("Authorization")) == "" {
		return c.Next()
	}
	return JWTMiddleware(c)
}

// SessionMiddleware attaches the caller's snapshot session. The first request
// of a user loads their data; a request whose token first shows the educator
// role loads the educator data. A failed load never fails the request: the
// affected slots stay empty and the views that read them refetch.
func SessionMiddleware(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return c.Next()
		}

		sess, err := st.Session(c.UserContext(), id)
		if err != nil {
			log.Printf("Session data load for %s failed: %v", id.UserID, err)
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

// SessionFrom returns the session attached by SessionMiddleware, if any
func SessionFrom(c *fiber.Ctx) (*store.Session, bool) {
	sess, ok := c.Locals("session").(*store.Session)
	return sess, ok && sess != nil
}
