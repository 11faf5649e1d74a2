package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/storage"
)

type bookRepository interface {
	List(ctx context.Context) ([]models.Book, error)
	FindByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
}

// BookImage is one uploaded image stream.
type BookImage struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// CreateBookRequest is the payload for adding a catalogue entry.
type CreateBookRequest struct {
	Title       string `validate:"required"`
	Description string
	Images      []BookImage
}

// BookService manages the library book catalogue.
type BookService struct {
	repo      bookRepository
	store     storage.ObjectStore
	maxImages int
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookService creates the service.
func NewBookService(repo bookRepository, store storage.ObjectStore, maxImages int, validate *validator.Validate, logger *zap.Logger) *BookService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if maxImages <= 0 {
		maxImages = 15
	}
	return &BookService{repo: repo, store: store, maxImages: maxImages, validator: validate, logger: logger}
}

// Create uploads the images in order, then stores the book. A failed
// upload aborts the whole create.
func (s *BookService) Create(ctx context.Context, req CreateBookRequest) (*models.Book, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}
	if len(req.Images) > s.maxImages {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("at most %d images are allowed", s.maxImages))
	}

	imageURLs := make([]string, 0, len(req.Images))
	for _, image := range req.Images {
		key := fmt.Sprintf("books/%s%s", uuid.NewString(), filepath.Ext(image.Filename))
		url, err := s.store.Upload(ctx, key, image.ContentType, image.Reader)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to upload image")
		}
		imageURLs = append(imageURLs, url)
	}

	book := &models.Book{
		Title:       req.Title,
		Description: req.Description,
		Images:      imageURLs,
		Featured:    false,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create book")
	}
	return book, nil
}

// List returns books newest-first.
func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list books")
	}
	return books, nil
}

// Delete removes a book.
func (s *BookService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "book not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load book")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete book")
	}
	return nil
}

// ToggleFeatured flips the book's featured flag. No mutual exclusion.
func (s *BookService) ToggleFeatured(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "book not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load book")
	}

	book.Featured = !book.Featured
	if err := s.repo.SetFeatured(ctx, id, book.Featured); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update featured flag")
	}
	return book, nil
}
