package controllers

import (
	"context"
	"sync"

	"edemy/database"
	"edemy/models"
	"edemy/store"
)

// Backend is the part of the course backend the educator console writes to.
type Backend interface {
	AddCourse(ctx context.Context, token string, courseData []byte, thumbnailPath string) error
	DeleteCourse(ctx context.Context, token, id string) error
}

// Controller serves the educator console: aggregates, course management and
// course drafts.
type Controller struct {
	store     *store.Store
	backend   Backend
	drafts    *database.DraftRepository
	uploadDir string

	locks sync.Map // draft id -> *sync.Mutex
}

func New(st *store.Store, backend Backend, drafts *database.DraftRepository, uploadDir string) *Controller {
	return &Controller{store: st, backend: backend, drafts: drafts, uploadDir: uploadDir}
}

// lockDraft serializes edits of one draft
func (h *Controller) lockDraft(draftID string) func() {
	m, _ := h.locks.LoadOrStore(draftID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// forgetDraft drops the lock of a draft whose row is gone
func (h *Controller) forgetDraft(draftID string) {
	h.locks.Delete(draftID)
}

type myCourse struct {
	ID          string  `json:"_id"`
	CourseTitle string  `json:"courseTitle"`
	Thumbnail   string  `json:"courseThumbnail"`
	Students    int     `json:"students"`
	Earnings    float64 `json:"earnings"`
	IsPublished bool    `json:"isPublished"`
	PublishedOn string  `json:"publishedOn"`
}

func ownedCourses(courses []models.Course) []myCourse {
	out := make([]myCourse, 0, len(courses))
	for _, c := range courses {
		out = append(out, myCourse{
			ID:          c.ID,
			CourseTitle: c.CourseTitle,
			Thumbnail:   string(c.CourseThumbnail),
			Students:    c.EnrolledCount(),
			Earnings:    courseEarnings(c),
			IsPublished: c.IsPublished,
			PublishedOn: c.CreatedAt,
		})
	}
	return out
}
