package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/export"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.CourseRegistration, error)
	FindByID(ctx context.Context, id string) (*models.CourseRegistration, error)
	Create(ctx context.Context, registration *models.CourseRegistration) error
	Delete(ctx context.Context, id string) error
}

// RegisterCourseRequest is the public course registration payload. Birthdate
// arrives as a date-only string, the shape an HTML date input submits.
type RegisterCourseRequest struct {
	Name         string `json:"name" validate:"required"`
	Birthdate    string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	State        string `json:"state" validate:"required"`
	School       string `json:"school" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Telegram     string `json:"telegram"`
	Memorization string `json:"memorization" validate:"required"`
	Narration    string `json:"narration"`
	Tajweed      string `json:"tajweed"`
	SessionTime  string `json:"session_time" validate:"required"`
	Notes        string `json:"notes"`
	Commitment   *bool  `json:"commitment" validate:"required"`
}

// CourseService manages course registrations.
type CourseService struct {
	repo      courseRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService creates the service.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{
		repo:      repo,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// Register stores a public registration.
func (s *CourseService) Register(ctx context.Context, req RegisterCourseRequest) (*models.CourseRegistration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all required fields must be filled")
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "birthdate must be a YYYY-MM-DD date")
	}

	registration := &models.CourseRegistration{
		Name:         req.Name,
		Birthdate:    birthdate,
		State:        req.State,
		School:       req.School,
		Phone:        req.Phone,
		Email:        req.Email,
		Telegram:     req.Telegram,
		Memorization: req.Memorization,
		Narration:    req.Narration,
		Tajweed:      req.Tajweed,
		SessionTime:  req.SessionTime,
		Notes:        req.Notes,
		Commitment:   *req.Commitment,
	}
	if err := s.repo.Create(ctx, registration); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store registration")
	}
	return registration, nil
}

// List returns registrations newest-first.
func (s *CourseService) List(ctx context.Context) ([]models.CourseRegistration, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	return registrations, nil
}

// Delete removes a registration.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete registration")
	}
	return nil
}

// Export renders the registration list as csv or pdf.
func (s *CourseService) Export(ctx context.Context, format string) ([]byte, string, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}

	dataset := export.Dataset{
		Headers: []string{"Name", "Birthdate", "State", "School", "Phone", "Email", "Memorization", "Session", "Registered"},
	}
	for _, reg := range registrations {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":         reg.Name,
			"Birthdate":    reg.Birthdate.Format("2006-01-02"),
			"State":        reg.State,
			"School":       reg.School,
			"Phone":        reg.Phone,
			"Email":        reg.Email,
			"Memorization": reg.Memorization,
			"Session":      reg.SessionTime,
			"Registered":   reg.CreatedAt.Format("2006-01-02"),
		})
	}

	switch format {
	case "pdf":
		data, err := s.pdf.Render(dataset, "Course registrations")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, "application/pdf", nil
	case "", "csv":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
