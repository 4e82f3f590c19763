package controllers

import (
	"context"

	"edemy/models"
	"edemy/store"
)

// Backend is the part of the course backend the storefront writes to.
type Backend interface {
	Course(ctx context.Context, token, id string) (*models.Course, error)
	Enroll(ctx context.Context, token, courseID string) error
	Purchase(ctx context.Context, token, courseID string) (string, error)
	CourseProgress(ctx context.Context, token, courseID string) (*models.CourseProgress, error)
	MarkLectureComplete(ctx context.Context, token, courseID, lectureID string) error
	AddRating(ctx context.Context, token, courseID string, rating int) error
}

// Controller serves the student-facing storefront views.
type Controller struct {
	store    *store.Store
	backend  Backend
	currency string
}

func New(st *store.Store, backend Backend, currency string) *Controller {
	return &Controller{store: st, backend: backend, currency: currency}
}
