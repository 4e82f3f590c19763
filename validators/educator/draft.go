package educatorValidator

import (
	"encoding/json"
	"strconv"
	"strings"

	"edemy/course"
	"edemy/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DetailsRequest carries course-level draft fields. Numbers may arrive as
// JSON numbers or numeric strings.
type DetailsRequest struct {
	CourseTitle       string      `json:"courseTitle"`
	CourseDescription string      `json:"courseDescription"`
	CoursePrice       json.Number `json:"coursePrice"`
	Discount          json.Number `json:"discount"`
}

type ChapterRequest struct {
	ChapterTitle string `json:"chapterTitle"`
}

type LectureRequest struct {
	LectureTitle    string      `json:"lectureTitle"`
	LectureDuration json.Number `json:"lectureDuration"`
	LectureURL      string      `json:"lectureUrl"`
	IsPreviewFree   bool        `json:"isPreviewFree"`
}

// DraftID validates the draft id route parameter
func DraftID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		draftID := strings.TrimSpace(c.Params("draftId"))
		if _, err := uuid.Parse(draftID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Draft ID!", nil)
		}

		c.Locals("draftID", draftID)
		return c.Next()
	}
}

// ChapterID validates the chapter id route parameter
func ChapterID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID := strings.TrimSpace(c.Params("chapterId"))
		if _, err := uuid.Parse(chapterID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Chapter ID!", nil)
		}

		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// LectureIndex validates the 0-based lecture position route parameter
func LectureIndex() fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil || index < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture index!", nil)
		}

		c.Locals("lectureIndex", index)
		return c.Next()
	}
}

// Details validates the course-level fields of a draft
func Details() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DetailsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		details := course.Details{
			Title:       strings.TrimSpace(reqData.CourseTitle),
			Description: strings.TrimSpace(reqData.CourseDescription),
		}

		price, ok := parseNumber(reqData.CoursePrice)
		if !ok {
			errors["coursePrice"] = "Course price must be a number!"
		}
		details.Price = price

		discount, ok := parseNumber(reqData.Discount)
		if !ok {
			errors["discount"] = "Discount must be a number!"
		}
		details.Discount = discount

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDetails", &details)
		return c.Next()
	}
}

// Chapter validates a new chapter request
func Chapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChapterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.ChapterTitle = strings.TrimSpace(reqData.ChapterTitle)
		if len(reqData.ChapterTitle) > 200 {
			return middleware.ValidationErrorResponse(c, map[string]string{"chapterTitle": "Chapter title must be at most 200 characters!"})
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// Lecture coerces a new lecture request into course.LectureInput. Content
// rules are enforced by the draft itself.
func Lecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LectureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		duration, ok := parseNumber(reqData.LectureDuration)
		if !ok || duration != float64(int(duration)) {
			return middleware.ValidationErrorResponse(c, map[string]string{"lectureDuration": "Lecture duration must be a whole number of minutes!"})
		}

		c.Locals("validatedLecture", &course.LectureInput{
			Title:         reqData.LectureTitle,
			Duration:      int(duration),
			URL:           reqData.LectureURL,
			IsPreviewFree: reqData.IsPreviewFree,
		})
		return c.Next()
	}
}

// Thumbnail checks the multipart image upload
func Thumbnail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"image": "Thumbnail Not Selected"})
		}
		if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
			return middleware.ValidationErrorResponse(c, map[string]string{"image": "Thumbnail must be an image!"})
		}

		c.Locals("thumbnailFile", file)
		return c.Next()
	}
}

// parseNumber treats a missing value as 0
func parseNumber(n json.Number) (float64, bool) {
	if n == "" {
		return 0, true
	}
	f, err := n.Float64()
	return f, err == nil
}
