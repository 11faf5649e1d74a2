package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// LibraryRepository provides persistence for library registrations.
type LibraryRepository struct {
	db *sqlx.DB
}

// NewLibraryRepository creates the repository.
func NewLibraryRepository(db *sqlx.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

// List returns registrations ordered newest-first.
func (r *LibraryRepository) List(ctx context.Context) ([]models.LibraryRegistration, error) {
	const query = `SELECT id, name, birthdate, school, school_year, room_number, wilaya, phone, email, prayer_promise, picture_url, created_at
FROM library_registrations ORDER BY created_at DESC`
	var registrations []models.LibraryRegistration
	if err := r.db.SelectContext(ctx, &registrations, query); err != nil {
		return nil, fmt.Errorf("list library registrations: %w", err)
	}
	return registrations, nil
}

// FindByID returns a registration by identifier.
func (r *LibraryRepository) FindByID(ctx context.Context, id string) (*models.LibraryRegistration, error) {
	const query = `SELECT id, name, birthdate, school, school_year, room_number, wilaya, phone, email, prayer_promise, picture_url, created_at
FROM library_registrations WHERE id = $1`
	var registration models.LibraryRegistration
	if err := r.db.GetContext(ctx, &registration, query, id); err != nil {
		return nil, err
	}
	return &registration, nil
}

// Create inserts a new registration.
func (r *LibraryRepository) Create(ctx context.Context, registration *models.LibraryRegistration) error {
	if registration.ID == "" {
		registration.ID = uuid.NewString()
	}
	if registration.CreatedAt.IsZero() {
		registration.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO library_registrations (id, name, birthdate, school, school_year, room_number, wilaya, phone, email, prayer_promise, picture_url, created_at)
VALUES (:id, :name, :birthdate, :school, :school_year, :room_number, :wilaya, :phone, :email, :prayer_promise, :picture_url, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, registration); err != nil {
		return fmt.Errorf("create library registration: %w", err)
	}
	return nil
}

// Delete removes a registration.
func (r *LibraryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM library_registrations WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete library registration: %w", err)
	}
	return nil
}
