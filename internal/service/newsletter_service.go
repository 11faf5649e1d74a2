package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type newsletterRepository interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	FindByID(ctx context.Context, id string) (*models.Subscriber, error)
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Create(ctx context.Context, subscriber *models.Subscriber) error
	Delete(ctx context.Context, id string) error
}

// SubscribeRequest is the public subscription payload.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterService manages newsletter subscriptions.
type NewsletterService struct {
	repo      newsletterRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNewsletterService creates the service.
func NewNewsletterService(repo newsletterRepository, validate *validator.Validate, logger *zap.Logger) *NewsletterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NewsletterService{repo: repo, validator: validate, logger: logger}
}

// Subscribe adds a new subscriber. Duplicate emails are rejected.
func (s *NewsletterService) Subscribe(ctx context.Context, req SubscribeRequest) (*models.Subscriber, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a valid email is required")
	}

	email := strings.ToLower(req.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrDuplicateEmail, "email is already subscribed")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check subscription")
	}

	subscriber := &models.Subscriber{Email: email}
	if err := s.repo.Create(ctx, subscriber); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store subscription")
	}
	return subscriber, nil
}

// List returns subscribers newest-first.
func (s *NewsletterService) List(ctx context.Context) ([]models.Subscriber, error) {
	subscribers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subscribers")
	}
	return subscribers, nil
}

// Delete removes a subscriber.
func (s *NewsletterService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "subscriber not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subscriber")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subscriber")
	}
	return nil
}
