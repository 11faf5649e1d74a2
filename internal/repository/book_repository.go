package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// BookRepository provides persistence for library books.
type BookRepository struct {
	db *sqlx.DB
}

// NewBookRepository creates the repository.
func NewBookRepository(db *sqlx.DB) *BookRepository {
	return &BookRepository{db: db}
}

// List returns books ordered newest-first.
func (r *BookRepository) List(ctx context.Context) ([]models.Book, error) {
	const query = `SELECT id, title, description, images, featured, created_at FROM books ORDER BY created_at DESC`
	var books []models.Book
	if err := r.db.SelectContext(ctx, &books, query); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// FindByID returns a book by identifier.
func (r *BookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	const query = `SELECT id, title, description, images, featured, created_at FROM books WHERE id = $1`
	var book models.Book
	if err := r.db.GetContext(ctx, &book, query, id); err != nil {
		return nil, err
	}
	return &book, nil
}

// Create inserts a new book.
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO books (id, title, description, images, featured, created_at)
VALUES (:id, :title, :description, :images, :featured, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// Delete removes a book.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// SetFeatured updates one book's featured flag.
func (r *BookRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE books SET featured = $1 WHERE id = $2", featured, id); err != nil {
		return fmt.Errorf("set book featured: %w", err)
	}
	return nil
}
