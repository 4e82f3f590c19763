package course

import (
	"fmt"
	"math"

	"edemy/models"
)

// MeanRating is the unrounded mean of all ratings, 0 when there are none
func MeanRating(c models.Course) float64 {
	if len(c.CourseRatings) == 0 {
		return 0
	}
	var total float64
	for _, r := range c.CourseRatings {
		total += r.Rating
	}
	return total / float64(len(c.CourseRatings))
}

// AverageRating is the floor of the mean rating
func AverageRating(c models.Course) int {
	return int(math.Floor(MeanRating(c)))
}

// ChapterDuration sums lecture durations in minutes
func ChapterDuration(ch models.Chapter) int {
	total := 0
	for _, l := range ch.ChapterContent {
		total += l.LectureDuration
	}
	return total
}

func CourseDuration(c models.Course) int {
	total := 0
	for _, ch := range c.CourseContent {
		total += ChapterDuration(ch)
	}
	return total
}

func LectureCount(c models.Course) int {
	n := 0
	for _, ch := range c.CourseContent {
		n += len(ch.ChapterContent)
	}
	return n
}

// FormatDuration renders minutes as "35m", "2h" or "1h 5m"
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// EffectivePrice applies a percentage discount to a price
func EffectivePrice(price, discount float64) float64 {
	return price - discount*price/100
}

func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// CompletionPercent is done/total as a percentage clamped to [0, 100]
func CompletionPercent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(done) * 100 / float64(total)
	return math.Max(0, math.Min(100, p))
}

// Progress builds the enrollment view for a course and its progress record
func Progress(c models.Course, p *models.CourseProgress) models.EnrollmentProgress {
	done := 0
	if p != nil {
		done = len(p.LectureCompleted)
	}
	total := LectureCount(c)
	return models.EnrollmentProgress{
		Course:           c,
		LectureCompleted: done,
		TotalLectures:    total,
		Percent:          CompletionPercent(done, total),
		IsCompleted:      total > 0 && done >= total,
	}
}
