package models

import (
	"encoding/json"
)

// Course mirrors the backend's course document.
type Course struct {
	ID                string    `json:"_id"`
	CourseTitle       string    `json:"courseTitle"`
	CourseDescription string    `json:"courseDescription"` // rich text HTML
	CoursePrice       float64   `json:"coursePrice"`
	Discount          float64   `json:"discount"` // percent, 0..100
	CourseThumbnail   Thumbnail `json:"courseThumbnail"`
	CourseContent     []Chapter `json:"courseContent"`
	CourseRatings     []Rating  `json:"courseRatings"`
	Educator          UserRef   `json:"educator"`
	IsPublished       bool      `json:"isPublished"`
	EnrolledStudents  []UserRef `json:"enrolledStudents"`
	CreatedAt         string    `json:"createdAt,omitempty"`
}

type Chapter struct {
	ChapterID      string    `json:"chapterId"`
	ChapterOrder   int       `json:"chapterOrder"`
	ChapterTitle   string    `json:"chapterTitle"`
	ChapterContent []Lecture `json:"chapterContent"`
	Collapsed      bool      `json:"collapsed,omitempty"`
}

type Lecture struct {
	LectureID       string `json:"lectureId"`
	LectureTitle    string `json:"lectureTitle"`
	LectureDuration int    `json:"lectureDuration"` // minutes
	LectureURL      string `json:"lectureUrl"`
	IsPreviewFree   bool   `json:"isPreviewFree"`
	LectureOrder    int    `json:"lectureOrder"`
}

type Rating struct {
	UserID string  `json:"userId"`
	Rating float64 `json:"rating"`
}

// EnrolledCount returns the number of students enrolled in the course
func (c Course) EnrolledCount() int {
	return len(c.EnrolledStudents)
}

// HasStudent reports whether the given user is enrolled in the course
func (c Course) HasStudent(userID string) bool {
	for _, s := range c.EnrolledStudents {
		if s.ID == userID {
			return true
		}
	}
	return false
}

// RatingBy returns the rating a user left on the course, 0 when none
func (c Course) RatingBy(userID string) float64 {
	for _, r := range c.CourseRatings {
		if r.UserID == userID {
			return r.Rating
		}
	}
	return 0
}

// Thumbnail is the course image URL. The backend sends either a plain
// string or an object carrying a url field.
type Thumbnail string

func (t *Thumbnail) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Thumbnail(s)
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = Thumbnail(obj.URL)
	return nil
}

// UserRef is a reference to a user that may arrive populated
// ({_id, name, imageUrl}) or as a bare id string.
type UserRef struct {
	ID       string `json:"_id"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (u *UserRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = UserRef{}
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*u = UserRef{ID: id}
		return nil
	}
	type plain UserRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = UserRef(p)
	return nil
}
