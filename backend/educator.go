package backend

import (
	"context"

	"github.com/go-resty/resty/v2"

	"edemy/models"
)

// UpdateRoleToEducator asks the backend to grant the educator role. The
// role only shows up in identity tokens issued after this call.
func (c *Client) UpdateRoleToEducator(ctx context.Context, token string) error {
	return c.get(ctx, token, "/api/educator/update-role", nil)
}

// AddCourse submits a course as multipart form data: the JSON payload in
// courseData and the thumbnail file in image.
func (c *Client) AddCourse(ctx context.Context, token string, courseData []byte, thumbnailPath string) error {
	req := c.request(ctx, token).
		SetFormData(map[string]string{"courseData": string(courseData)}).
		SetFile("image", thumbnailPath)
	return c.call(req, resty.MethodPost, "/api/educator/add-course", nil)
}

func (c *Client) EducatorCourses(ctx context.Context, token string) ([]models.Course, error) {
	var out struct {
		Courses []models.Course `json:"courses"`
	}
	if err := c.get(ctx, token, "/api/educator/courses", &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

func (c *Client) Dashboard(ctx context.Context, token string) (*models.DashboardData, error) {
	var out struct {
		DashboardData *models.DashboardData `json:"dashboardData"`
	}
	if err := c.get(ctx, token, "/api/educator/dashboard", &out); err != nil {
		return nil, err
	}
	return out.DashboardData, nil
}

func (c *Client) EnrolledStudents(ctx context.Context, token string) ([]models.EnrolledStudent, error) {
	var out struct {
		EnrolledStudents []models.EnrolledStudent `json:"enrolledStudents"`
	}
	if err := c.get(ctx, token, "/api/educator/enrolled-students", &out); err != nil {
		return nil, err
	}
	return out.EnrolledStudents, nil
}
