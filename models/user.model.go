package models

// User is the signed-in user's record as the backend returns it.
type User struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ImageURL        string   `json:"imageUrl"`
	EnrolledCourses []string `json:"enrolledCourses"`
}

// IsEnrolledIn reports whether the course id is among the user's enrollments
func (u *User) IsEnrolledIn(courseID string) bool {
	if u == nil {
		return false
	}
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

type Educator struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

const (
	RoleStudent  = "student"
	RoleEducator = "educator"
)
