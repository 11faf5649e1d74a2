package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/storage"
)

type recitationRepository interface {
	List(ctx context.Context) ([]models.Recitation, error)
	FindByID(ctx context.Context, id string) (*models.Recitation, error)
	FindByRank(ctx context.Context, rank int) (*models.Recitation, error)
	Create(ctx context.Context, recitation *models.Recitation) error
	Update(ctx context.Context, recitation *models.Recitation) error
	Delete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
}

// CreateRecitationRequest is the payload for creating a recitation. The
// audio stream is required and uploaded to the object store before insert.
type CreateRecitationRequest struct {
	Title       string `validate:"required"`
	Rank        int    `validate:"required"`
	Audio       io.Reader
	Filename    string
	ContentType string
}

// RecitationService manages recitations and their rank slots.
type RecitationService struct {
	repo      recitationRepository
	store     storage.ObjectStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRecitationService creates the service.
func NewRecitationService(repo recitationRepository, store storage.ObjectStore, validate *validator.Validate, logger *zap.Logger) *RecitationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RecitationService{repo: repo, store: store, validator: validate, logger: logger}
}

// Create uploads the audio and stores the recitation. When the rank slot is
// already occupied the occupant is replaced in place and its featured flag
// is reset; this slot behavior is intentional, not a conflict error.
func (s *RecitationService) Create(ctx context.Context, req CreateRecitationRequest) (*models.Recitation, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title and rank are required")
	}
	if !slices.Contains(models.RecitationRanks, req.Rank) {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("rank must be one of %v", models.RecitationRanks))
	}
	if req.Audio == nil {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "audio file is required")
	}

	key := fmt.Sprintf("recitations/%s%s", uuid.NewString(), filepath.Ext(req.Filename))
	audioURL, err := s.store.Upload(ctx, key, req.ContentType, req.Audio)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to upload audio")
	}

	existing, err := s.repo.FindByRank(ctx, req.Rank)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check rank slot")
	}

	if existing != nil {
		existing.Title = req.Title
		existing.AudioURL = audioURL
		existing.Featured = false
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace recitation")
		}
		s.logger.Info("recitation slot replaced", zap.Int("rank", req.Rank), zap.String("id", existing.ID))
		return existing, true, nil
	}

	recitation := &models.Recitation{
		Title:    req.Title,
		AudioURL: audioURL,
		Rank:     req.Rank,
		Featured: false,
	}
	if err := s.repo.Create(ctx, recitation); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create recitation")
	}
	return recitation, false, nil
}

// List returns recitations newest-first.
func (s *RecitationService) List(ctx context.Context) ([]models.Recitation, error) {
	recitations, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recitations")
	}
	return recitations, nil
}

// Delete removes a recitation.
func (s *RecitationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "recitation not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recitation")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete recitation")
	}
	return nil
}

// ToggleFeatured flips the recitation's featured flag. Recitations have no
// mutual exclusion; several may be featured at once.
func (s *RecitationService) ToggleFeatured(ctx context.Context, id string) (*models.Recitation, error) {
	recitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "recitation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recitation")
	}

	recitation.Featured = !recitation.Featured
	if err := s.repo.SetFeatured(ctx, id, recitation.Featured); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update featured flag")
	}
	return recitation, nil
}
