package controllers

import (
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"edemy/course"
	"edemy/middleware"
	"edemy/models"
	"edemy/store"
	"edemy/utils"
	educatorValidator "edemy/validators/educator"

	"github.com/gofiber/fiber/v2"
)

type draftView struct {
	DraftID        string           `json:"draft_id"`
	Draft          *course.Draft    `json:"draft"`
	Chapters       []chapterSummary `json:"chapters"`
	TotalDuration  string           `json:"total_duration"`
	TotalLectures  int              `json:"total_lectures"`
	EffectivePrice string           `json:"effective_price"`
	UpdatedAt      string           `json:"updated_at"`
}

type chapterSummary struct {
	ChapterID string `json:"chapterId"`
	Duration  string `json:"duration"`
	Lectures  int    `json:"lectures"`
}

func newDraftView(row *models.CourseDraft, d *course.Draft) draftView {
	asCourse := models.Course{CourseContent: d.Chapters}
	chapters := make([]chapterSummary, 0, len(d.Chapters))
	for _, ch := range d.Chapters {
		chapters = append(chapters, chapterSummary{
			ChapterID: ch.ChapterID,
			Duration:  course.FormatDuration(course.ChapterDuration(ch)),
			Lectures:  len(ch.ChapterContent),
		})
	}
	return draftView{
		DraftID:        row.DraftID,
		Draft:          d,
		Chapters:       chapters,
		TotalDuration:  course.FormatDuration(course.CourseDuration(asCourse)),
		TotalLectures:  course.LectureCount(asCourse),
		EffectivePrice: course.FormatPrice(course.EffectivePrice(d.Price, d.Discount)),
		UpdatedAt:      row.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// editDraft loads a draft, applies fn under the draft's lock and saves it
// when fn succeeds
func (h *Controller) editDraft(c *fiber.Ctx, fn func(d *course.Draft) error) error {
	id, _ := middleware.IdentityFrom(c)
	draftID := c.Locals("draftID").(string)

	unlock := h.lockDraft(draftID)
	defer unlock()

	row, d, err := h.drafts.Get(id.UserID, draftID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := fn(d); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := h.drafts.Save(row, d); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft updated successfully!", newDraftView(row, d))
}

// CreateDraft starts an empty course draft
func (h *Controller) CreateDraft(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)

	d := course.NewDraft()
	row, err := h.drafts.Create(id.UserID, d)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Draft created successfully!", newDraftView(row, d))
}

func (h *Controller) ListDrafts(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)

	rows, err := h.drafts.List(id.UserID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	drafts := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, fiber.Map{
			"draft_id":      row.DraftID,
			"title":         row.Title,
			"has_thumbnail": row.ThumbnailPath != "",
			"updated_at":    row.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Drafts fetched successfully!", fiber.Map{
		"drafts": drafts,
	})
}

func (h *Controller) GetDraft(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	draftID := c.Locals("draftID").(string)

	row, d, err := h.drafts.Get(id.UserID, draftID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft fetched successfully!", newDraftView(row, d))
}

func (h *Controller) DeleteDraft(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	draftID := c.Locals("draftID").(string)

	unlock := h.lockDraft(draftID)
	defer unlock()

	row, _, err := h.drafts.Get(id.UserID, draftID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := h.drafts.Delete(id.UserID, draftID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	h.forgetDraft(draftID)
	removeThumbnail(row.ThumbnailPath)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft deleted successfully!", nil)
}

func (h *Controller) UpdateDetails(c *fiber.Ctx) error {
	details := c.Locals("validatedDetails").(*course.Details)
	return h.editDraft(c, func(d *course.Draft) error {
		return d.SetDetails(*details)
	})
}

func (h *Controller) AddChapter(c *fiber.Ctx) error {
	reqData := c.Locals("validatedChapter").(*educatorValidator.ChapterRequest)
	return h.editDraft(c, func(d *course.Draft) error {
		d.AddChapter(reqData.ChapterTitle)
		return nil
	})
}

func (h *Controller) RemoveChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(string)
	return h.editDraft(c, func(d *course.Draft) error {
		if !d.RemoveChapter(chapterID) {
			return course.ErrChapterNotFound
		}
		return nil
	})
}

func (h *Controller) ToggleChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(string)
	return h.editDraft(c, func(d *course.Draft) error {
		if !d.ToggleChapter(chapterID) {
			return course.ErrChapterNotFound
		}
		return nil
	})
}

func (h *Controller) AddLecture(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(string)
	input := c.Locals("validatedLecture").(*course.LectureInput)
	return h.editDraft(c, func(d *course.Draft) error {
		_, err := d.AddLecture(chapterID, *input)
		return err
	})
}

func (h *Controller) RemoveLecture(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(string)
	index := c.Locals("lectureIndex").(int)
	return h.editDraft(c, func(d *course.Draft) error {
		if d.FindChapter(chapterID) == nil {
			return course.ErrChapterNotFound
		}
		d.RemoveLecture(chapterID, index)
		return nil
	})
}

// UploadThumbnail stores the course image for a draft, replacing any
// previous one
func (h *Controller) UploadThumbnail(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	draftID := c.Locals("draftID").(string)
	file := c.Locals("thumbnailFile").(*multipart.FileHeader)

	unlock := h.lockDraft(draftID)
	defer unlock()

	row, d, err := h.drafts.Get(id.UserID, draftID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	path, err := utils.SaveUploadedFile(file, filepath.Join(h.uploadDir, id.UserID))
	if err != nil {
		log.Printf("Failed to save thumbnail: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
	}

	previous := d.Thumbnail
	d.AttachThumbnail(path)
	if err := h.drafts.Save(row, d); err != nil {
		removeThumbnail(path)
		return middleware.ErrorResponse(c, err)
	}
	if previous != "" && previous != path {
		removeThumbnail(previous)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", newDraftView(row, d))
}

// SubmitDraft sends a completed draft to the backend as a new course and
// discards it locally
func (h *Controller) SubmitDraft(c *fiber.Ctx) error {
	id, _ := middleware.IdentityFrom(c)
	sess, _ := middleware.SessionFrom(c)
	draftID := c.Locals("draftID").(string)

	unlock := h.lockDraft(draftID)
	defer unlock()

	row, d, err := h.drafts.Get(id.UserID, draftID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := d.Validate(); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	payload, err := d.Serialize()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := h.backend.AddCourse(c.UserContext(), id.Token, payload, d.Thumbnail); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if err := h.drafts.Delete(id.UserID, draftID); err != nil {
		log.Printf("Failed to discard submitted draft %s: %v", draftID, err)
	} else {
		h.forgetDraft(draftID)
	}
	removeThumbnail(row.ThumbnailPath)

	h.refreshAfterMutation(c, sess, id.Token)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course Added!", fiber.Map{
		"course_title": d.Title,
	})
}

// refreshAfterMutation refetches the catalog and the educator's data. The
// mutation already succeeded, so failures are only logged.
func (h *Controller) refreshAfterMutation(c *fiber.Ctx, sess *store.Session, token string) {
	if _, err := h.store.RefreshCourses(c.UserContext()); err != nil {
		log.Printf("Catalog refresh after mutation failed: %v", err)
	}
	if sess == nil {
		return
	}
	if err := h.store.RefreshEducatorData(c.UserContext(), sess, token); err != nil {
		log.Printf("Educator data refresh after mutation failed: %v", err)
	}
}

func removeThumbnail(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove thumbnail %s: %v", path, err)
	}
}
