package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"edemy/models"
)

var ErrNotFound = errors.New("not found")

// Backend is the subset of the backend API the snapshot reads from.
type Backend interface {
	AllCourses(ctx context.Context) ([]models.Course, error)
	Educators(ctx context.Context) ([]models.Educator, error)
	UserData(ctx context.Context, token string) (*models.User, error)
	EnrolledCourses(ctx context.Context, token string) ([]models.Course, error)
	CourseProgress(ctx context.Context, token, courseID string) (*models.CourseProgress, error)
	EducatorCourses(ctx context.Context, token string) ([]models.Course, error)
	Dashboard(ctx context.Context, token string) (*models.DashboardData, error)
	EnrolledStudents(ctx context.Context, token string) ([]models.EnrolledStudent, error)
}

// Identity is the verified caller of an authenticated request.
type Identity struct {
	UserID string
	Role   string
	Token  string
}

// Store is the shared snapshot of remote data: the public catalog plus one
// Session per signed-in user. Views read from it; it is refreshed wholesale.
type Store struct {
	backend       Backend
	progressLimit int

	courses   slot[[]models.Course]
	educators slot[[]models.Educator]

	mu       sync.Mutex
	sessions map[string]*Session
}

func New(backend Backend, progressLimit int) *Store {
	if progressLimit < 1 {
		progressLimit = 1
	}
	return &Store{
		backend:       backend,
		progressLimit: progressLimit,
		sessions:      make(map[string]*Session),
	}
}

// LoadCatalog refetches all courses and educators. A failure of one does not
// stop the other.
func (s *Store) LoadCatalog(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := s.RefreshCourses(ctx)
		return err
	})
	g.Go(func() error {
		_, err := refresh(ctx, &s.educators, "educators", s.backend.Educators)
		return err
	})
	return g.Wait()
}

func (s *Store) RefreshCourses(ctx context.Context) ([]models.Course, error) {
	return refresh(ctx, &s.courses, "courses", s.backend.AllCourses)
}

func (s *Store) Courses() []models.Course {
	c, _ := s.courses.get()
	return c
}

func (s *Store) Educators() []models.Educator {
	e, _ := s.educators.get()
	return e
}

// CatalogLoaded reports whether the course list has been fetched at least once
func (s *Store) CatalogLoaded() bool {
	_, ok := s.courses.get()
	return ok
}

// CourseByID looks a course up in the catalog snapshot
func (s *Store) CourseByID(id string) (models.Course, error) {
	for _, c := range s.Courses() {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, errors.Wrapf(ErrNotFound, "course %s", id)
}

// SearchCourses filters the catalog by a case-insensitive title match. An
// empty query returns the whole catalog.
func (s *Store) SearchCourses(query string) []models.Course {
	all := s.Courses()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}
	out := make([]models.Course, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.CourseTitle), query) {
			out = append(out, c)
		}
	}
	return out
}

// Session returns the caller's session, creating it on first sight. User
// data is loaded on login and educator data when the caller's role first
// becomes educator.
func (s *Store) Session(ctx context.Context, id Identity) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id.UserID]
	if !ok {
		sess = &Session{UserID: id.UserID}
		s.sessions[id.UserID] = sess
	}
	s.mu.Unlock()

	sess.touch()
	becameEducator := sess.observeRole(id.Role)

	// Both loads run even when one fails; the first error is reported.
	var firstErr error
	if _, loaded := sess.user.get(); !loaded {
		firstErr = s.RefreshUserData(ctx, sess, id.Token)
	}
	if becameEducator {
		if err := s.RefreshEducatorData(ctx, sess, id.Token); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return sess, firstErr
}

// RefreshUserData refetches the user's record and enrolled courses
func (s *Store) RefreshUserData(ctx context.Context, sess *Session, token string) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := refresh(ctx, &sess.user, "user data", func(ctx context.Context) (*models.User, error) {
			return s.backend.UserData(ctx, token)
		})
		return err
	})
	g.Go(func() error {
		_, err := s.RefreshEnrolledCourses(ctx, sess, token)
		return err
	})
	return g.Wait()
}

func (s *Store) RefreshEnrolledCourses(ctx context.Context, sess *Session, token string) ([]models.Course, error) {
	return refresh(ctx, &sess.enrolled, "enrolled courses", func(ctx context.Context) ([]models.Course, error) {
		return s.backend.EnrolledCourses(ctx, token)
	})
}

// RefreshEducatorData refetches the dashboard, the enrolled students list
// and the educator's own courses
func (s *Store) RefreshEducatorData(ctx context.Context, sess *Session, token string) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := refresh(ctx, &sess.dashboard, "dashboard", func(ctx context.Context) (*models.DashboardData, error) {
			return s.backend.Dashboard(ctx, token)
		})
		return err
	})
	g.Go(func() error {
		_, err := refresh(ctx, &sess.students, "enrolled students", func(ctx context.Context) ([]models.EnrolledStudent, error) {
			return s.backend.EnrolledStudents(ctx, token)
		})
		return err
	})
	g.Go(func() error {
		_, err := refresh(ctx, &sess.educatorCourses, "educator courses", func(ctx context.Context) ([]models.Course, error) {
			return s.backend.EducatorCourses(ctx, token)
		})
		return err
	})
	return g.Wait()
}

// PruneSessions drops sessions idle for longer than maxIdle and returns how
// many were removed
func (s *Store) PruneSessions(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen().Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}
