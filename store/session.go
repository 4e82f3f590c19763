package store

import (
	"sync"
	"time"

	"edemy/models"
)

// Session is the per-user part of the snapshot.
type Session struct {
	UserID string

	mu   sync.Mutex
	role string
	seen time.Time

	user            slot[*models.User]
	enrolled        slot[[]models.Course]
	educatorCourses slot[[]models.Course]
	dashboard       slot[*models.DashboardData]
	students        slot[[]models.EnrolledStudent]
}

// observeRole records the role from the latest verified token and reports
// whether it just became educator
func (s *Session) observeRole(role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	became := role == models.RoleEducator && s.role != models.RoleEducator
	s.role = role
	return became
}

func (s *Session) touch() {
	s.mu.Lock()
	s.seen = time.Now()
	s.mu.Unlock()
}

func (s *Session) lastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen
}

func (s *Session) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *Session) IsEducator() bool {
	return s.Role() == models.RoleEducator
}

func (s *Session) User() *models.User {
	u, _ := s.user.get()
	return u
}

func (s *Session) EnrolledCourses() []models.Course {
	c, _ := s.enrolled.get()
	return c
}

func (s *Session) EducatorCourses() []models.Course {
	c, _ := s.educatorCourses.get()
	return c
}

func (s *Session) Dashboard() *models.DashboardData {
	d, _ := s.dashboard.get()
	return d
}

func (s *Session) EnrolledStudents() []models.EnrolledStudent {
	e, _ := s.students.get()
	return e
}

// IsEnrolled checks the user's enrollment list, then the enrolled courses
func (s *Session) IsEnrolled(courseID string) bool {
	if s.User().IsEnrolledIn(courseID) {
		return true
	}
	for _, c := range s.EnrolledCourses() {
		if c.ID == courseID {
			return true
		}
	}
	return false
}
