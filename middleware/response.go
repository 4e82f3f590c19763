package middleware

import (
	"log"

	"edemy/backend"
	"edemy/course"
	"edemy/database"
	"edemy/store"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse maps a failed operation onto a single user-facing message
func ErrorResponse(c *fiber.Ctx, err error) error {
	var verr *course.ValidationError
	if errors.As(err, &verr) {
		return ValidationErrorResponse(c, verr.Fields)
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		return JsonResponse(c, fiber.StatusBadRequest, false, apiErr.Error(), nil)
	}
	if backend.IsTransport(err) {
		log.Printf("Backend unreachable: %v", err)
		return JsonResponse(c, fiber.StatusBadGateway, false, "Unable to reach the course service!", nil)
	}
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, database.ErrDraftNotFound) || errors.Is(err, course.ErrChapterNotFound) {
		return JsonResponse(c, fiber.StatusNotFound, false, notFoundMessage(err), nil)
	}
	log.Printf("Unhandled error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, database.ErrDraftNotFound):
		return "Draft not found!"
	case errors.Is(err, course.ErrChapterNotFound):
		return "Chapter not found!"
	default:
		return "Course not found!"
	}
}
