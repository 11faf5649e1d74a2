package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// RecitationRepository provides persistence for recitations.
type RecitationRepository struct {
	db *sqlx.DB
}

// NewRecitationRepository creates the repository.
func NewRecitationRepository(db *sqlx.DB) *RecitationRepository {
	return &RecitationRepository{db: db}
}

// List returns recitations ordered newest-first.
func (r *RecitationRepository) List(ctx context.Context) ([]models.Recitation, error) {
	const query = `SELECT id, title, audio_url, rank, featured, created_at FROM recitations ORDER BY created_at DESC`
	var recitations []models.Recitation
	if err := r.db.SelectContext(ctx, &recitations, query); err != nil {
		return nil, fmt.Errorf("list recitations: %w", err)
	}
	return recitations, nil
}

// FindByID returns a recitation by identifier.
func (r *RecitationRepository) FindByID(ctx context.Context, id string) (*models.Recitation, error) {
	const query = `SELECT id, title, audio_url, rank, featured, created_at FROM recitations WHERE id = $1`
	var recitation models.Recitation
	if err := r.db.GetContext(ctx, &recitation, query, id); err != nil {
		return nil, err
	}
	return &recitation, nil
}

// FindByRank returns the recitation occupying the given rank slot.
func (r *RecitationRepository) FindByRank(ctx context.Context, rank int) (*models.Recitation, error) {
	const query = `SELECT id, title, audio_url, rank, featured, created_at FROM recitations WHERE rank = $1`
	var recitation models.Recitation
	if err := r.db.GetContext(ctx, &recitation, query, rank); err != nil {
		return nil, err
	}
	return &recitation, nil
}

// Create inserts a new recitation.
func (r *RecitationRepository) Create(ctx context.Context, recitation *models.Recitation) error {
	if recitation.ID == "" {
		recitation.ID = uuid.NewString()
	}
	if recitation.CreatedAt.IsZero() {
		recitation.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO recitations (id, title, audio_url, rank, featured, created_at)
VALUES (:id, :title, :audio_url, :rank, :featured, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, recitation); err != nil {
		return fmt.Errorf("create recitation: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of an existing recitation.
func (r *RecitationRepository) Update(ctx context.Context, recitation *models.Recitation) error {
	const query = `UPDATE recitations SET title = :title, audio_url = :audio_url, featured = :featured WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, recitation); err != nil {
		return fmt.Errorf("update recitation: %w", err)
	}
	return nil
}

// Delete removes a recitation.
func (r *RecitationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recitations WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete recitation: %w", err)
	}
	return nil
}

// SetFeatured updates one recitation's featured flag.
func (r *RecitationRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE recitations SET featured = $1 WHERE id = $2", featured, id); err != nil {
		return fmt.Errorf("set recitation featured: %w", err)
	}
	return nil
}
