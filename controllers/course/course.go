package controllers

import (
	"edemy/course"
	"edemy/middleware"
	"edemy/utils"

	"github.com/gofiber/fiber/v2"
)

const homeCourseCount = 4

// Home returns the featured courses and the educator list
func (h *Controller) Home(c *fiber.Ctx) error {
	courses := h.store.Courses()
	if len(courses) > homeCourseCount {
		courses = courses[:homeCourseCount]
	}
	educators := h.store.Educators()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home fetched successfully!", fiber.Map{
		"courses":   courseCards(courses, educators),
		"educators": educators,
		"currency":  h.currency,
	})
}

// CourseList returns the catalog, filtered by title when a search input is given
func (h *Controller) CourseList(c *fiber.Ctx) error {
	input, _ := c.Locals("searchInput").(string)
	courses := h.store.SearchCourses(input)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"input":    input,
		"total":    len(courses),
		"courses":  courseCards(courses, h.store.Educators()),
		"currency": h.currency,
	})
}

// CourseDetails fetches a course and composes the detail view
func (h *Controller) CourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	var token string
	if id, ok := middleware.IdentityFrom(c); ok {
		token = id.Token
	}

	courseData, err := h.backend.Course(c.UserContext(), token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	isEnrolled := false
	if sess, ok := middleware.SessionFrom(c); ok {
		isEnrolled = sess.IsEnrolled(courseData.ID)
	}

	var previewVideoID string
	if lecture, ok := firstPreview(*courseData); ok {
		previewVideoID, _ = utils.ExtractVideoID(lecture.LectureURL)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           courseData,
		"chapters":         chapterViews(*courseData),
		"average_rating":   course.AverageRating(*courseData),
		"rating_count":     len(courseData.CourseRatings),
		"total_duration":   course.FormatDuration(course.CourseDuration(*courseData)),
		"total_lectures":   course.LectureCount(*courseData),
		"enrolled_count":   courseData.EnrolledCount(),
		"effective_price":  course.FormatPrice(course.EffectivePrice(courseData.CoursePrice, courseData.Discount)),
		"currency":         h.currency,
		"is_enrolled":      isEnrolled,
		"preview_video_id": previewVideoID,
	})
}
