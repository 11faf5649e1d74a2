package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// LibraryTimesRepository provides persistence for opening hours, keyed by day.
type LibraryTimesRepository struct {
	db *sqlx.DB
}

// NewLibraryTimesRepository creates the repository.
func NewLibraryTimesRepository(db *sqlx.DB) *LibraryTimesRepository {
	return &LibraryTimesRepository{db: db}
}

// List returns every stored day. Callers order by the fixed day sequence.
func (r *LibraryTimesRepository) List(ctx context.Context) ([]models.OpeningHours, error) {
	const query = `SELECT day, open_time, close_time, is_closed, updated_at FROM library_times`
	var hours []models.OpeningHours
	if err := r.db.SelectContext(ctx, &hours, query); err != nil {
		return nil, fmt.Errorf("list library times: %w", err)
	}
	return hours, nil
}

// FindByDay returns the stored hours for a day.
func (r *LibraryTimesRepository) FindByDay(ctx context.Context, day models.Weekday) (*models.OpeningHours, error) {
	const query = `SELECT day, open_time, close_time, is_closed, updated_at FROM library_times WHERE day = $1`
	var hours models.OpeningHours
	if err := r.db.GetContext(ctx, &hours, query, day); err != nil {
		return nil, err
	}
	return &hours, nil
}

// Upsert creates the record for the day if absent, else replaces it.
func (r *LibraryTimesRepository) Upsert(ctx context.Context, hours *models.OpeningHours) error {
	hours.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO library_times (day, open_time, close_time, is_closed, updated_at)
VALUES (:day, :open_time, :close_time, :is_closed, :updated_at)
ON CONFLICT (day) DO UPDATE SET open_time = :open_time, close_time = :close_time, is_closed = :is_closed, updated_at = :updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, hours); err != nil {
		return fmt.Errorf("upsert library times: %w", err)
	}
	return nil
}
