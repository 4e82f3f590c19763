package courseValidator

import (
	"regexp"
	"strings"

	"edemy/middleware"

	"github.com/gofiber/fiber/v2"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// RatingRequest is the validated body of a course rating
type RatingRequest struct {
	Rating int `json:"rating"`
}

// CourseID validates the course id route parameter and stores it as courseID
func CourseID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params(param))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		if !idPattern.MatchString(courseID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// LectureID validates the lecture id route parameter
func LectureID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lectureID := strings.TrimSpace(c.Params("lectureId"))
		if lectureID == "" || !idPattern.MatchString(lectureID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lecture ID!", nil)
		}

		c.Locals("lectureID", lectureID)
		return c.Next()
	}
}

// CourseSearch normalizes the optional course-list search input
func CourseSearch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := strings.TrimSpace(c.Params("input", c.Query("q")))
		if len(input) > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{"input": "Search input must be at most 100 characters!"})
		}

		c.Locals("searchInput", input)
		return c.Next()
	}
}

// Rating validates a 1 to 5 star course rating
func Rating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RatingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			return middleware.ValidationErrorResponse(c, map[string]string{"rating": "Rating must be between 1 and 5!"})
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

// PaymentResult checks the post-checkout query string
func PaymentResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("paymentSuccess", c.Query("payment") == "success")
		return c.Next()
	}
}
