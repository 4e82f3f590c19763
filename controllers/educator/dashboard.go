package controllers

import (
	"math"

	"edemy/course"
	"edemy/middleware"
	"edemy/models"

	"github.com/gofiber/fiber/v2"
)

func courseEarnings(c models.Course) float64 {
	return math.Floor(float64(c.EnrolledCount()) * course.EffectivePrice(c.CoursePrice, c.Discount))
}

// Dashboard returns the educator's aggregate figures
func (h *Controller) Dashboard(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if sess.Dashboard() == nil {
		if err := h.store.RefreshEducatorData(c.UserContext(), sess, id.Token); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"dashboardData": sess.Dashboard(),
	})
}

// MyCourses lists the educator's courses with students and earnings
func (h *Controller) MyCourses(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if sess.EducatorCourses() == nil {
		if err := h.store.RefreshEducatorData(c.UserContext(), sess, id.Token); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": ownedCourses(sess.EducatorCourses()),
	})
}

type studentRow struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	CourseTitle  string `json:"courseTitle"`
	EnrolledDate string `json:"enrolledDate"`
}

// EnrolledStudents lists the students enrolled in the educator's courses
func (h *Controller) EnrolledStudents(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if sess.EnrolledStudents() == nil {
		if err := h.store.RefreshEducatorData(c.UserContext(), sess, id.Token); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	students := sess.EnrolledStudents()
	rows := make([]studentRow, 0, len(students))
	for i, s := range students {
		rows = append(rows, studentRow{
			Index:        i + 1,
			Name:         s.Student.Name,
			ImageURL:     s.Student.ImageURL,
			CourseTitle:  s.CourseTitle,
			EnrolledDate: s.Date(),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled students fetched successfully!", fiber.Map{
		"enrolledStudents": rows,
	})
}

// DeleteCourse removes one of the educator's courses on the backend
func (h *Controller) DeleteCourse(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	if err := h.backend.DeleteCourse(c.UserContext(), id.Token, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	h.refreshAfterMutation(c, sess, id.Token)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
