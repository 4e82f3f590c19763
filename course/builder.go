package course

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"edemy/models"
)

var ErrChapterNotFound = errors.New("chapter not found")

// Details are the top-level course fields an educator fills in.
type Details struct {
	Title       string  `json:"courseTitle" validate:"notblank,max=200"`
	Description string  `json:"courseDescription"`
	Price       float64 `json:"coursePrice" validate:"gte=0"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`
}

// LectureInput is what an educator submits when adding a lecture.
type LectureInput struct {
	Title         string `json:"lectureTitle" validate:"notblank"`
	Duration      int    `json:"lectureDuration" validate:"gt=0"`
	URL           string `json:"lectureUrl" validate:"required,url"`
	IsPreviewFree bool   `json:"isPreviewFree"`
}

// Draft is the in-memory course tree built up before submission. Chapter
// and lecture ids are temporary; the backend assigns durable ones.
//
// Chapter orders are always 1..N in list order, and lecture orders are
// 1..M within their chapter.
type Draft struct {
	Details
	Chapters  []models.Chapter `json:"courseContent"`
	Thumbnail string           `json:"thumbnail,omitempty"` // local file path
}

// Payload is the courseData part of the add-course request.
type Payload struct {
	CourseTitle       string           `json:"courseTitle"`
	CourseDescription string           `json:"courseDescription"`
	CoursePrice       float64          `json:"coursePrice"`
	Discount          float64          `json:"discount"`
	CourseContent     []models.Chapter `json:"courseContent"`
}

func NewDraft() *Draft {
	return &Draft{Chapters: []models.Chapter{}}
}

// SetDetails replaces the course-level fields after validating them
func (d *Draft) SetDetails(in Details) error {
	in.Title = strings.TrimSpace(in.Title)
	if err := Check(in); err != nil {
		return err
	}
	d.Details = in
	return nil
}

// AttachThumbnail records the local path of the uploaded course image
func (d *Draft) AttachThumbnail(path string) {
	d.Thumbnail = path
}

// AddChapter appends a chapter with the next order. A blank title is a no-op
// and returns nil.
func (d *Draft) AddChapter(title string) *models.Chapter {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	d.Chapters = append(d.Chapters, models.Chapter{
		ChapterID:      uuid.NewString(),
		ChapterOrder:   len(d.Chapters) + 1,
		ChapterTitle:   title,
		ChapterContent: []models.Lecture{},
	})
	return &d.Chapters[len(d.Chapters)-1]
}

// RemoveChapter deletes a chapter and renumbers the rest
func (d *Draft) RemoveChapter(chapterID string) bool {
	idx := d.chapterIndex(chapterID)
	if idx < 0 {
		return false
	}
	d.Chapters = append(d.Chapters[:idx], d.Chapters[idx+1:]...)
	for i := range d.Chapters {
		d.Chapters[i].ChapterOrder = i + 1
	}
	return true
}

// ToggleChapter flips the collapsed display flag of a chapter
func (d *Draft) ToggleChapter(chapterID string) bool {
	idx := d.chapterIndex(chapterID)
	if idx < 0 {
		return false
	}
	d.Chapters[idx].Collapsed = !d.Chapters[idx].Collapsed
	return true
}

// AddLecture validates the input and appends it to the chapter. On any
// error the draft is left untouched.
func (d *Draft) AddLecture(chapterID string, in LectureInput) (*models.Lecture, error) {
	idx := d.chapterIndex(chapterID)
	if idx < 0 {
		return nil, ErrChapterNotFound
	}

	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	if err := Check(in); err != nil {
		return nil, err
	}

	ch := &d.Chapters[idx]
	ch.ChapterContent = append(ch.ChapterContent, models.Lecture{
		LectureID:       uuid.NewString(),
		LectureTitle:    in.Title,
		LectureDuration: in.Duration,
		LectureURL:      in.URL,
		IsPreviewFree:   in.IsPreviewFree,
		LectureOrder:    len(ch.ChapterContent) + 1,
	})
	return &ch.ChapterContent[len(ch.ChapterContent)-1], nil
}

// RemoveLecture deletes the lecture at a 0-based position within a chapter.
// Out-of-range positions are ignored.
func (d *Draft) RemoveLecture(chapterID string, index int) bool {
	idx := d.chapterIndex(chapterID)
	if idx < 0 {
		return false
	}
	ch := &d.Chapters[idx]
	if index < 0 || index >= len(ch.ChapterContent) {
		return false
	}
	ch.ChapterContent = append(ch.ChapterContent[:index], ch.ChapterContent[index+1:]...)
	for i := range ch.ChapterContent {
		ch.ChapterContent[i].LectureOrder = i + 1
	}
	return true
}

// Validate checks the draft is ready to be submitted
func (d *Draft) Validate() error {
	if err := Check(d.Details); err != nil {
		return err
	}
	if d.Thumbnail == "" {
		return fieldError("image", "Thumbnail Not Selected")
	}
	return nil
}

// Payload builds the submission body. Display-only state is dropped.
func (d *Draft) Payload() Payload {
	content := make([]models.Chapter, len(d.Chapters))
	for i, ch := range d.Chapters {
		ch.Collapsed = false
		ch.ChapterContent = append([]models.Lecture(nil), ch.ChapterContent...)
		if ch.ChapterContent == nil {
			ch.ChapterContent = []models.Lecture{}
		}
		content[i] = ch
	}
	return Payload{
		CourseTitle:       d.Title,
		CourseDescription: d.Description,
		CoursePrice:       d.Price,
		Discount:          d.Discount,
		CourseContent:     content,
	}
}

// Serialize returns the JSON-encoded submission payload
func (d *Draft) Serialize() ([]byte, error) {
	b, err := json.Marshal(d.Payload())
	if err != nil {
		return nil, errors.Wrap(err, "encode course payload")
	}
	return b, nil
}

// FindChapter returns the chapter with the given id, or nil
func (d *Draft) FindChapter(chapterID string) *models.Chapter {
	if idx := d.chapterIndex(chapterID); idx >= 0 {
		return &d.Chapters[idx]
	}
	return nil
}

func (d *Draft) chapterIndex(chapterID string) int {
	for i := range d.Chapters {
		if d.Chapters[i].ChapterID == chapterID {
			return i
		}
	}
	return -1
}
