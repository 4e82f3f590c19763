package backend

import (
	"context"

	"edemy/models"
)

type courseRequest struct {
	CourseID string `json:"courseId"`
}

func (c *Client) Educators(ctx context.Context) ([]models.Educator, error) {
	var out struct {
		Educators []models.Educator `json:"educators"`
	}
	if err := c.get(ctx, "", "/api/user/educator", &out); err != nil {
		return nil, err
	}
	return out.Educators, nil
}

func (c *Client) UserData(ctx context.Context, token string) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.get(ctx, token, "/api/user/data", &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// EnrolledCourses returns the user's courses, most recent enrollment first
func (c *Client) EnrolledCourses(ctx context.Context, token string) ([]models.Course, error) {
	var out struct {
		EnrolledCourses []models.Course `json:"enrolledCourses"`
	}
	if err := c.get(ctx, token, "/api/user/enrolled-courses", &out); err != nil {
		return nil, err
	}
	courses := out.EnrolledCourses
	for i, j := 0, len(courses)-1; i < j; i, j = i+1, j-1 {
		courses[i], courses[j] = courses[j], courses[i]
	}
	return courses, nil
}

// Enroll adds the user to a free course
func (c *Client) Enroll(ctx context.Context, token, courseID string) error {
	return c.post(ctx, token, "/api/user/enroll", courseRequest{CourseID: courseID}, nil)
}

// Purchase starts a checkout and returns the hosted session URL
func (c *Client) Purchase(ctx context.Context, token, courseID string) (string, error) {
	var out struct {
		SessionURL string `json:"session_url"`
	}
	if err := c.post(ctx, token, "/api/user/purchase", courseRequest{CourseID: courseID}, &out); err != nil {
		return "", err
	}
	return out.SessionURL, nil
}

// CourseProgress returns nil when the user has not started the course
func (c *Client) CourseProgress(ctx context.Context, token, courseID string) (*models.CourseProgress, error) {
	var out struct {
		ProgressData *models.CourseProgress `json:"progressData"`
	}
	if err := c.post(ctx, token, "/api/user/get-course-progress", courseRequest{CourseID: courseID}, &out); err != nil {
		return nil, err
	}
	return out.ProgressData, nil
}

func (c *Client) MarkLectureComplete(ctx context.Context, token, courseID, lectureID string) error {
	body := struct {
		CourseID  string `json:"courseId"`
		LectureID string `json:"lectureId"`
	}{courseID, lectureID}
	return c.post(ctx, token, "/api/user/update-course-progress", body, nil)
}

func (c *Client) AddRating(ctx context.Context, token, courseID string, rating int) error {
	body := struct {
		CourseID string `json:"courseId"`
		Rating   int    `json:"rating"`
	}{courseID, rating}
	return c.post(ctx, token, "/api/user/add-rating", body, nil)
}
