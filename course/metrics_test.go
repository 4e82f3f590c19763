package course

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edemy/models"
)

func ratings(values ...float64) models.Course {
	c := models.Course{}
	for i, v := range values {
		c.CourseRatings = append(c.CourseRatings, models.Rating{UserID: string(rune('a' + i)), Rating: v})
	}
	return c
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 4, AverageRating(ratings(3, 4, 5)))
	assert.Equal(t, 0, AverageRating(ratings()))
	assert.Equal(t, 3, AverageRating(ratings(3, 4)))
	assert.InDelta(t, 3.5, MeanRating(ratings(3, 4)), 0.0001)
}

func TestDurations(t *testing.T) {
	c := models.Course{CourseContent: []models.Chapter{
		{ChapterContent: []models.Lecture{{LectureDuration: 10}, {LectureDuration: 20}}},
		{ChapterContent: []models.Lecture{{LectureDuration: 5}}},
	}}

	assert.Equal(t, 30, ChapterDuration(c.CourseContent[0]))
	assert.Equal(t, 35, CourseDuration(c))
	assert.Equal(t, "35m", FormatDuration(CourseDuration(c)))
	assert.Equal(t, 3, LectureCount(c))
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:   "0m",
		59:  "59m",
		60:  "1h",
		65:  "1h 5m",
		125: "2h 5m",
		-4:  "0m",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "minutes=%d", in)
	}
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, "75.00", FormatPrice(EffectivePrice(100, 25)))
	assert.Equal(t, "49.99", FormatPrice(EffectivePrice(49.99, 0)))
	assert.Equal(t, "0.00", FormatPrice(EffectivePrice(80, 100)))
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, float64(0), CompletionPercent(3, 0))
	assert.Equal(t, float64(50), CompletionPercent(2, 4))
	assert.Equal(t, float64(100), CompletionPercent(6, 4))
}

func TestProgress(t *testing.T) {
	c := models.Course{CourseContent: []models.Chapter{
		{ChapterContent: []models.Lecture{{LectureID: "l1"}, {LectureID: "l2"}}},
	}}

	p := Progress(c, &models.CourseProgress{LectureCompleted: []string{"l1"}})
	assert.Equal(t, 1, p.LectureCompleted)
	assert.Equal(t, 2, p.TotalLectures)
	assert.Equal(t, float64(50), p.Percent)
	assert.False(t, p.IsCompleted)

	none := Progress(c, nil)
	assert.Equal(t, 0, none.LectureCompleted)

	done := Progress(c, &models.CourseProgress{LectureCompleted: []string{"l1", "l2"}})
	assert.True(t, done.IsCompleted)
}
