package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// CourseRepository provides persistence for course registrations.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns registrations ordered newest-first.
func (r *CourseRepository) List(ctx context.Context) ([]models.CourseRegistration, error) {
	const query = `SELECT id, name, birthdate, state, school, phone, email, telegram, memorization, narration, tajweed, session_time, notes, commitment, created_at
FROM course_registrations ORDER BY created_at DESC`
	var registrations []models.CourseRegistration
	if err := r.db.SelectContext(ctx, &registrations, query); err != nil {
		return nil, fmt.Errorf("list course registrations: %w", err)
	}
	return registrations, nil
}

// FindByID returns a registration by identifier.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.CourseRegistration, error) {
	const query = `SELECT id, name, birthdate, state, school, phone, email, telegram, memorization, narration, tajweed, session_time, notes, commitment, created_at
FROM course_registrations WHERE id = $1`
	var registration models.CourseRegistration
	if err := r.db.GetContext(ctx, &registration, query, id); err != nil {
		return nil, err
	}
	return &registration, nil
}

// Create inserts a new registration.
func (r *CourseRepository) Create(ctx context.Context, registration *models.CourseRegistration) error {
	if registration.ID == "" {
		registration.ID = uuid.NewString()
	}
	if registration.CreatedAt.IsZero() {
		registration.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO course_registrations (id, name, birthdate, state, school, phone, email, telegram, memorization, narration, tajweed, session_time, notes, commitment, created_at)
VALUES (:id, :name, :birthdate, :state, :school, :phone, :email, :telegram, :memorization, :narration, :tajweed, :session_time, :notes, :commitment, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, registration); err != nil {
		return fmt.Errorf("create course registration: %w", err)
	}
	return nil
}

// Delete removes a registration.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM course_registrations WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete course registration: %w", err)
	}
	return nil
}
