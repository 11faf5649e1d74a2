package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type libraryTimesRepository interface {
	List(ctx context.Context) ([]models.OpeningHours, error)
	Upsert(ctx context.Context, hours *models.OpeningHours) error
}

// SetLibraryTimesRequest sets the opening hours for one day.
type SetLibraryTimesRequest struct {
	Day      models.Weekday `json:"day" validate:"required"`
	Open     string         `json:"open"`
	Close    string         `json:"close"`
	IsClosed bool           `json:"is_closed"`
}

// LibraryTimesService manages opening hours keyed by weekday.
type LibraryTimesService struct {
	repo      libraryTimesRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLibraryTimesService creates the service.
func NewLibraryTimesService(repo libraryTimesRepository, validate *validator.Validate, logger *zap.Logger) *LibraryTimesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &LibraryTimesService{repo: repo, validator: validate, logger: logger}
}

// Set creates or replaces the hours for a day. Closed days always store
// nil open/close; open days require both.
func (s *LibraryTimesService) Set(ctx context.Context, req SetLibraryTimesRequest) (*models.OpeningHours, error) {
	if !req.Day.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid day")
	}
	if !req.IsClosed && (req.Open == "" || req.Close == "") {
		return nil, appErrors.Clone(appErrors.ErrValidation, "open and close times are required for open days")
	}

	hours := &models.OpeningHours{Day: req.Day, IsClosed: req.IsClosed}
	if !req.IsClosed {
		hours.Open = &req.Open
		hours.Close = &req.Close
	}

	if err := s.repo.Upsert(ctx, hours); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store opening hours")
	}
	return hours, nil
}

// List returns the stored days ordered by the fixed week sequence.
func (s *LibraryTimesService) List(ctx context.Context) ([]models.OpeningHours, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list opening hours")
	}

	byDay := make(map[models.Weekday]models.OpeningHours, len(stored))
	for _, hours := range stored {
		byDay[hours.Day] = hours
	}

	ordered := make([]models.OpeningHours, 0, len(stored))
	for _, day := range models.WeekdayOrder {
		if hours, ok := byDay[day]; ok {
			ordered = append(ordered, hours)
		}
	}
	return ordered, nil
}
