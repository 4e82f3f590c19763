package controllers

import (
	"log"

	"edemy/course"
	"edemy/middleware"
	"edemy/models"
	"edemy/store"
	"edemy/utils"
	courseValidator "edemy/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type playerLecture struct {
	models.Lecture
	Completed bool `json:"completed"`
}

type playerChapter struct {
	ChapterID    string          `json:"chapterId"`
	ChapterOrder int             `json:"chapterOrder"`
	ChapterTitle string          `json:"chapterTitle"`
	Duration     string          `json:"duration"`
	Lectures     []playerLecture `json:"lectures"`
}

// enrolledCourse finds a course among the caller's enrollments, refreshing
// them once if it is missing
func (h *Controller) enrolledCourse(c *fiber.Ctx, sess *store.Session, token, courseID string) (models.Course, error) {
	find := func(courses []models.Course) (models.Course, bool) {
		for _, ec := range courses {
			if ec.ID == courseID {
				return ec, true
			}
		}
		return models.Course{}, false
	}

	if ec, ok := find(sess.EnrolledCourses()); ok {
		return ec, nil
	}
	courses, err := h.store.RefreshEnrolledCourses(c.UserContext(), sess, token)
	if err != nil {
		return models.Course{}, err
	}
	if ec, ok := find(courses); ok {
		return ec, nil
	}
	return models.Course{}, errors.Wrapf(store.ErrNotFound, "enrolled course %s", courseID)
}

// Player returns the lecture outline of an enrolled course with completion
// state and the caller's rating
func (h *Controller) Player(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	courseData, err := h.enrolledCourse(c, sess, id.Token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	progress, err := h.backend.CourseProgress(c.UserContext(), id.Token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	chapters := make([]playerChapter, 0, len(courseData.CourseContent))
	for _, ch := range courseData.CourseContent {
		pc := playerChapter{
			ChapterID:    ch.ChapterID,
			ChapterOrder: ch.ChapterOrder,
			ChapterTitle: ch.ChapterTitle,
			Duration:     course.FormatDuration(course.ChapterDuration(ch)),
			Lectures:     make([]playerLecture, 0, len(ch.ChapterContent)),
		}
		for _, l := range ch.ChapterContent {
			pc.Lectures = append(pc.Lectures, playerLecture{Lecture: l, Completed: progress.IsLectureDone(l.LectureID)})
		}
		chapters = append(chapters, pc)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course player fetched successfully!", fiber.Map{
		"course_id":    courseData.ID,
		"course_title": courseData.CourseTitle,
		"chapters":     chapters,
		"progress":     course.Progress(courseData, progress),
		"my_rating":    courseData.RatingBy(id.UserID),
	})
}

// LectureVideo resolves the embeddable video id of one lecture
func (h *Controller) LectureVideo(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)
	lectureID := c.Locals("lectureID").(string)

	courseData, err := h.enrolledCourse(c, sess, id.Token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	lecture, found := findLecture(courseData, lectureID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	videoID, err := utils.ExtractVideoID(lecture.LectureURL)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid video URL!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture fetched successfully!", fiber.Map{
		"lecture":  lecture,
		"video_id": videoID,
	})
}

// CompleteLecture marks a lecture as done and returns the updated progress
func (h *Controller) CompleteLecture(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)
	lectureID := c.Locals("lectureID").(string)

	courseData, err := h.enrolledCourse(c, sess, id.Token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if _, found := findLecture(courseData, lectureID); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	if err := h.backend.MarkLectureComplete(c.UserContext(), id.Token, courseID, lectureID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	progress, err := h.backend.CourseProgress(c.UserContext(), id.Token, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked as completed!", fiber.Map{
		"progress": course.Progress(courseData, progress),
	})
}

// RateCourse records the caller's rating and refreshes the affected data
func (h *Controller) RateCourse(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)
	reqData := c.Locals("validatedRating").(*courseValidator.RatingRequest)

	if _, err := h.enrolledCourse(c, sess, id.Token, courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if err := h.backend.AddRating(c.UserContext(), id.Token, courseID, reqData.Rating); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// The rating is stored; refresh failures are only logged.
	if _, err := h.store.RefreshEnrolledCourses(c.UserContext(), sess, id.Token); err != nil {
		log.Printf("Enrolled courses refresh after rating %s failed: %v", courseID, err)
	}
	if _, err := h.store.RefreshCourses(c.UserContext()); err != nil {
		log.Printf("Catalog refresh after rating %s failed: %v", courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating Updated!", fiber.Map{
		"rating": reqData.Rating,
	})
}
