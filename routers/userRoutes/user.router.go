package userProfileRoutes

import (
	userController "edemy/controllers/userControllers"
	"edemy/middleware"
	"edemy/store"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, st *store.Store, h *userController.Controller) {
	userGroup := app.Group("/api/user", middleware.JWTMiddleware, middleware.SessionMiddleware(st))

	userGroup.Get("/me", h.Me)
	userGroup.Post("/become-educator", h.BecomeEducator)

	app.Post("/api/refresh", middleware.JWTMiddleware, middleware.SessionMiddleware(st), h.Refresh)
}
