package controllers

import (
	"edemy/course"
	"edemy/models"
)

type courseCard struct {
	ID             string  `json:"_id"`
	CourseTitle    string  `json:"courseTitle"`
	Thumbnail      string  `json:"courseThumbnail"`
	EducatorName   string  `json:"educatorName"`
	AverageRating  int     `json:"averageRating"`
	RatingCount    int     `json:"ratingCount"`
	CoursePrice    float64 `json:"coursePrice"`
	Discount       float64 `json:"discount"`
	EffectivePrice string  `json:"effectivePrice"`
}

type chapterView struct {
	models.Chapter
	Duration     string `json:"duration"`
	LectureCount int    `json:"lectureCount"`
}

func newCourseCard(c models.Course, educators []models.Educator) courseCard {
	name := c.Educator.Name
	if name == "" {
		for _, e := range educators {
			if e.ID == c.Educator.ID {
				name = e.Name
				break
			}
		}
	}
	return courseCard{
		ID:             c.ID,
		CourseTitle:    c.CourseTitle,
		Thumbnail:      string(c.CourseThumbnail),
		EducatorName:   name,
		AverageRating:  course.AverageRating(c),
		RatingCount:    len(c.CourseRatings),
		CoursePrice:    c.CoursePrice,
		Discount:       c.Discount,
		EffectivePrice: course.FormatPrice(course.EffectivePrice(c.CoursePrice, c.Discount)),
	}
}

func courseCards(courses []models.Course, educators []models.Educator) []courseCard {
	cards := make([]courseCard, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, newCourseCard(c, educators))
	}
	return cards
}

func chapterViews(c models.Course) []chapterView {
	out := make([]chapterView, 0, len(c.CourseContent))
	for _, ch := range c.CourseContent {
		out = append(out, chapterView{
			Chapter:      ch,
			Duration:     course.FormatDuration(course.ChapterDuration(ch)),
			LectureCount: len(ch.ChapterContent),
		})
	}
	return out
}

// firstPreview returns the first free-preview lecture, if any
func firstPreview(c models.Course) (models.Lecture, bool) {
	for _, ch := range c.CourseContent {
		for _, l := range ch.ChapterContent {
			if l.IsPreviewFree && l.LectureURL != "" {
				return l, true
			}
		}
	}
	return models.Lecture{}, false
}

func findLecture(c models.Course, lectureID string) (models.Lecture, bool) {
	for _, ch := range c.CourseContent {
		for _, l := range ch.ChapterContent {
			if l.LectureID == lectureID {
				return l, true
			}
		}
	}
	return models.Lecture{}, false
}
