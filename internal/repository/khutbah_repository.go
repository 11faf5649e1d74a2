package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// KhutbahRepository provides persistence for khutbah subjects.
type KhutbahRepository struct {
	db *sqlx.DB
}

// NewKhutbahRepository creates the repository.
func NewKhutbahRepository(db *sqlx.DB) *KhutbahRepository {
	return &KhutbahRepository{db: db}
}

// List returns subjects ordered newest-first.
func (r *KhutbahRepository) List(ctx context.Context) ([]models.KhutbahSubject, error) {
	const query = `SELECT id, title, featured, created_at FROM khutbah_subjects ORDER BY created_at DESC`
	var subjects []models.KhutbahSubject
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("list khutbah subjects: %w", err)
	}
	return subjects, nil
}

// FindByID returns a subject by identifier.
func (r *KhutbahRepository) FindByID(ctx context.Context, id string) (*models.KhutbahSubject, error) {
	const query = `SELECT id, title, featured, created_at FROM khutbah_subjects WHERE id = $1`
	var subject models.KhutbahSubject
	if err := r.db.GetContext(ctx, &subject, query, id); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create inserts a new subject.
func (r *KhutbahRepository) Create(ctx context.Context, subject *models.KhutbahSubject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO khutbah_subjects (id, title, featured, created_at)
VALUES (:id, :title, :featured, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("create khutbah subject: %w", err)
	}
	return nil
}

// Delete removes a subject.
func (r *KhutbahRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM khutbah_subjects WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete khutbah subject: %w", err)
	}
	return nil
}

// SetFeatured updates one subject's featured flag.
func (r *KhutbahRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE khutbah_subjects SET featured = $1 WHERE id = $2", featured, id); err != nil {
		return fmt.Errorf("set khutbah featured: %w", err)
	}
	return nil
}

// SetFeaturedExclusive clears the featured flag on every subject and sets it
// on the given one, inside a single transaction.
func (r *KhutbahRepository) SetFeaturedExclusive(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin featured tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "UPDATE khutbah_subjects SET featured = FALSE WHERE featured = TRUE"); err != nil {
		return fmt.Errorf("clear featured flags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE khutbah_subjects SET featured = TRUE WHERE id = $1", id); err != nil {
		return fmt.Errorf("set featured flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit featured tx: %w", err)
	}
	return nil
}
