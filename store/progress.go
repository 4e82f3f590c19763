package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"edemy/course"
	"edemy/models"
)

// Enrollments returns the user's enrolled courses with completion progress.
// Progress is fetched per course with at most progressLimit requests in
// flight; results keep enrollment order.
func (s *Store) Enrollments(ctx context.Context, sess *Session, token string) ([]models.EnrollmentProgress, error) {
	courses, loaded := sess.enrolled.get()
	if !loaded {
		var err error
		if courses, err = s.RefreshEnrolledCourses(ctx, sess, token); err != nil {
			return nil, err
		}
	}

	results := make([]models.EnrollmentProgress, len(courses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.progressLimit)
	for i, c := range courses {
		i, c := i, c
		g.Go(func() error {
			p, err := s.backend.CourseProgress(gctx, token, c.ID)
			if err != nil {
				return err
			}
			results[i] = course.Progress(c, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logSnapshot("progress fetch failed: %v", err)
		return nil, err
	}
	return results, nil
}
