package userController

import (
	"context"

	"edemy/middleware"
	"edemy/models"
	"edemy/store"

	"github.com/gofiber/fiber/v2"
)

// RoleUpdater grants the educator role on the backend.
type RoleUpdater interface {
	UpdateRoleToEducator(ctx context.Context, token string) error
}

type Controller struct {
	store   *store.Store
	backend RoleUpdater
}

func New(st *store.Store, backend RoleUpdater) *Controller {
	return &Controller{store: st, backend: backend}
}

// Me returns the caller's profile as seen by the snapshot
func (h *Controller) Me(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if sess.User() == nil {
		if err := h.store.RefreshUserData(c.UserContext(), sess, id.Token); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", fiber.Map{
		"user":             sess.User(),
		"role":             sess.Role(),
		"is_educator":      sess.IsEducator(),
		"enrolled_courses": len(sess.EnrolledCourses()),
	})
}

// BecomeEducator asks the backend for the educator role. The caller must
// obtain a fresh identity token before the educator console opens.
func (h *Controller) BecomeEducator(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if sess.IsEducator() {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already an educator!", fiber.Map{
			"role": models.RoleEducator,
		})
	}

	if err := h.backend.UpdateRoleToEducator(c.UserContext(), id.Token); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You can publish a course now!", fiber.Map{
		"role":          models.RoleEducator,
		"token_refresh": true,
	})
}

// Refresh refetches everything the caller's views depend on
func (h *Controller) Refresh(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := h.store.LoadCatalog(c.UserContext()); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := h.store.RefreshUserData(c.UserContext(), sess, id.Token); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if sess.IsEducator() {
		if err := h.store.RefreshEducatorData(c.UserContext(), sess, id.Token); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Data refreshed!", nil)
}
