package controllers

import (
	"log"

	"edemy/middleware"

	"github.com/gofiber/fiber/v2"
)

// Purchase starts checkout for a course and returns the session URL the
// client redirects to
func (h *Controller) Purchase(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Login to Enroll!", nil)
	}
	courseID := c.Locals("courseID").(string)

	if sess.IsEnrolled(courseID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already Enrolled!", nil)
	}

	sessionURL, err := h.backend.Purchase(c.UserContext(), id.Token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{
		"session_url": sessionURL,
	})
}

// Enroll enrolls the caller in a free course
func (h *Controller) Enroll(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Login to Enroll!", nil)
	}
	courseID := c.Locals("courseID").(string)

	if sess.IsEnrolled(courseID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already Enrolled!", nil)
	}

	if err := h.backend.Enroll(c.UserContext(), id.Token, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	// The enrollment already succeeded on the backend.
	if err := h.store.RefreshUserData(c.UserContext(), sess, id.Token); err != nil {
		log.Printf("Refresh after enrolling in %s failed: %v", courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully!", fiber.Map{
		"enrolled_courses": len(sess.EnrolledCourses()),
	})
}

// PaymentReturn is the landing after checkout. On success it refreshes the
// caller's enrollments so the new course shows up.
func (h *Controller) PaymentReturn(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	if paid, _ := c.Locals("paymentSuccess").(bool); !paid {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Payment was not completed!", fiber.Map{
			"course_id":   courseID,
			"is_enrolled": sess.IsEnrolled(courseID),
		})
	}

	if err := h.store.RefreshUserData(c.UserContext(), sess, id.Token); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful!", fiber.Map{
		"course_id":   courseID,
		"is_enrolled": sess.IsEnrolled(courseID),
	})
}

// MyEnrollments lists the caller's courses with completion progress
func (h *Controller) MyEnrollments(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := h.store.Enrollments(c.UserContext(), sess, id.Token)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
