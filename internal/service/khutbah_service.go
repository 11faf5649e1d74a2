package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type khutbahRepository interface {
	List(ctx context.Context) ([]models.KhutbahSubject, error)
	FindByID(ctx context.Context, id string) (*models.KhutbahSubject, error)
	Create(ctx context.Context, subject *models.KhutbahSubject) error
	Delete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	SetFeaturedExclusive(ctx context.Context, id string) error
}

// CreateKhutbahRequest is the payload for announcing a subject.
type CreateKhutbahRequest struct {
	Title string `json:"title" validate:"required"`
}

// KhutbahService manages khutbah subjects.
type KhutbahService struct {
	repo      khutbahRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewKhutbahService creates the service.
func NewKhutbahService(repo khutbahRepository, validate *validator.Validate, logger *zap.Logger) *KhutbahService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &KhutbahService{repo: repo, validator: validate, logger: logger}
}

// Create announces a new subject. Subjects are never featured on creation.
func (s *KhutbahService) Create(ctx context.Context, req CreateKhutbahRequest) (*models.KhutbahSubject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}

	subject := &models.KhutbahSubject{Title: req.Title, Featured: false}
	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return subject, nil
}

// List returns subjects newest-first.
func (s *KhutbahService) List(ctx context.Context) ([]models.KhutbahSubject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

// Delete removes a subject.
func (s *KhutbahService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subject")
	}
	return nil
}

// ToggleFeatured flips the subject's featured flag. Featuring a subject
// clears the flag on every other subject: at most one khutbah subject is
// ever surfaced on the main page.
func (s *KhutbahService) ToggleFeatured(ctx context.Context, id string) (*models.KhutbahSubject, error) {
	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	newStatus := !subject.Featured
	if newStatus {
		err = s.repo.SetFeaturedExclusive(ctx, id)
	} else {
		err = s.repo.SetFeatured(ctx, id, false)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update featured flag")
	}

	subject.Featured = newStatus
	return subject, nil
}
