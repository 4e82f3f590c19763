package backend

import (
	"context"
	"net/url"

	"edemy/models"
)

// AllCourses lists every published course
func (c *Client) AllCourses(ctx context.Context) ([]models.Course, error) {
	var out struct {
		Courses []models.Course `json:"courses"`
	}
	if err := c.get(ctx, "", "/api/course/all", &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// Course fetches a single course. The token is optional; it lets the backend
// reveal lecture URLs to enrolled students.
func (c *Client) Course(ctx context.Context, token, id string) (*models.Course, error) {
	var out struct {
		CourseData *models.Course `json:"courseData"`
	}
	if err := c.get(ctx, token, "/api/course/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	if out.CourseData == nil {
		return nil, &APIError{Op: "GET /api/course/:id", Message: "Course not found"}
	}
	return out.CourseData, nil
}

func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	return c.delete(ctx, token, "/api/course/"+url.PathEscape(id))
}
