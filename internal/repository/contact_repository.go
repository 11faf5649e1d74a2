package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// ContactRepository provides persistence for contact messages.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates the repository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns messages ordered newest-first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	const query = `SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`
	var messages []models.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// FindByID returns a message by identifier.
func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	const query = `SELECT id, name, email, message, created_at FROM contact_messages WHERE id = $1`
	var message models.ContactMessage
	if err := r.db.GetContext(ctx, &message, query, id); err != nil {
		return nil, err
	}
	return &message, nil
}

// Create inserts a new message.
func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO contact_messages (id, name, email, message, created_at)
VALUES (:id, :name, :email, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// Delete removes a message.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}
