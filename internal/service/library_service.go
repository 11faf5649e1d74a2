package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/export"
	"github.com/masjid-bouraoui/masjid-api/pkg/mailer"
	"github.com/masjid-bouraoui/masjid-api/pkg/storage"
)

type libraryRepository interface {
	List(ctx context.Context) ([]models.LibraryRegistration, error)
	FindByID(ctx context.Context, id string) (*models.LibraryRegistration, error)
	Create(ctx context.Context, registration *models.LibraryRegistration) error
	Delete(ctx context.Context, id string) error
}

// RegisterLibraryRequest is the public registration payload. The profile
// picture stream is required.
type RegisterLibraryRequest struct {
	Name          string    `validate:"required"`
	Birthdate     time.Time `validate:"required"`
	School        string    `validate:"required"`
	SchoolYear    string    `validate:"required"`
	RoomNumber    string    `validate:"required"`
	Wilaya        string    `validate:"required"`
	Phone         string    `validate:"required"`
	Email         string    `validate:"required,email"`
	PrayerPromise *bool     `validate:"required"`
	Picture       io.Reader
	Filename      string
	ContentType   string
}

// LibraryService manages library registrations.
type LibraryService struct {
	repo      libraryRepository
	store     storage.ObjectStore
	sender    mailer.Sender
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLibraryService creates the service.
func NewLibraryService(repo libraryRepository, store storage.ObjectStore, sender mailer.Sender, validate *validator.Validate, logger *zap.Logger) *LibraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &LibraryService{
		repo:      repo,
		store:     store,
		sender:    sender,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// Register stores a public registration. The picture upload happens first;
// a failed upload aborts the registration. A confirmation email is sent
// best-effort and never fails the request.
func (s *LibraryService) Register(ctx context.Context, req RegisterLibraryRequest) (*models.LibraryRegistration, error) {
	if req.Picture == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "profile picture is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all required fields must be filled")
	}

	key := fmt.Sprintf("library/%s%s", uuid.NewString(), filepath.Ext(req.Filename))
	pictureURL, err := s.store.Upload(ctx, key, req.ContentType, req.Picture)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to upload profile picture")
	}

	registration := &models.LibraryRegistration{
		Name:          req.Name,
		Birthdate:     req.Birthdate,
		School:        req.School,
		SchoolYear:    req.SchoolYear,
		RoomNumber:    req.RoomNumber,
		Wilaya:        req.Wilaya,
		Phone:         req.Phone,
		Email:         req.Email,
		PrayerPromise: *req.PrayerPromise,
		PictureURL:    pictureURL,
	}
	if err := s.repo.Create(ctx, registration); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store registration")
	}

	if s.sender != nil {
		msg := mailer.Message{
			To:      registration.Email,
			Subject: "Library registration received",
			Text:    fmt.Sprintf("Salam %s, your library registration was received. We will contact you soon.", registration.Name),
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			s.logger.Warn("confirmation email failed", zap.String("to", registration.Email), zap.Error(err))
		}
	}

	return registration, nil
}

// List returns registrations newest-first.
func (s *LibraryService) List(ctx context.Context) ([]models.LibraryRegistration, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	return registrations, nil
}

// Delete removes a registration.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
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
func (s *LibraryService) Export(ctx context.Context, format string) ([]byte, string, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}

	dataset := export.Dataset{
		Headers: []string{"Name", "Birthdate", "School", "Year", "Room", "Wilaya", "Phone", "Email", "Registered"},
	}
	for _, reg := range registrations {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Name":       reg.Name,
			"Birthdate":  reg.Birthdate.Format("2006-01-02"),
			"School":     reg.School,
			"Year":       reg.SchoolYear,
			"Room":       reg.RoomNumber,
			"Wilaya":     reg.Wilaya,
			"Phone":      reg.Phone,
			"Email":      reg.Email,
			"Registered": reg.CreatedAt.Format("2006-01-02"),
		})
	}

	switch format {
	case "pdf":
		data, err := s.pdf.Render(dataset, "Library registrations")
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
