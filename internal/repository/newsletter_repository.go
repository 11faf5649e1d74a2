package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

// NewsletterRepository provides persistence for newsletter subscribers.
type NewsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository creates the repository.
func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// List returns subscribers ordered newest-first.
func (r *NewsletterRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM newsletter_subscribers ORDER BY created_at DESC`
	var subscribers []models.Subscriber
	if err := r.db.SelectContext(ctx, &subscribers, query); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subscribers, nil
}

// FindByID returns a subscriber by identifier.
func (r *NewsletterRepository) FindByID(ctx context.Context, id string) (*models.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM newsletter_subscribers WHERE id = $1`
	var subscriber models.Subscriber
	if err := r.db.GetContext(ctx, &subscriber, query, id); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// FindByEmail returns a subscriber by email.
func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1`
	var subscriber models.Subscriber
	if err := r.db.GetContext(ctx, &subscriber, query, email); err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// Create inserts a new subscriber.
func (r *NewsletterRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	if subscriber.ID == "" {
		subscriber.ID = uuid.NewString()
	}
	if subscriber.CreatedAt.IsZero() {
		subscriber.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO newsletter_subscribers (id, email, created_at)
VALUES (:id, :email, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, subscriber); err != nil {
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

// Delete removes a subscriber.
func (r *NewsletterRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM newsletter_subscribers WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}
