package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type mockContactRepo struct {
	messages map[string]*models.ContactMessage
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{messages: map[string]*models.ContactMessage{}}
}

func (m *mockContactRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, 0, len(m.messages))
	for _, msg := range m.messages {
		out = append(out, *msg)
	}
	return out, nil
}

func (m *mockContactRepo) FindByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	msg, ok := m.messages[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return msg, nil
}

func (m *mockContactRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	if message.ID == "" {
		message.ID = "msg-1"
	}
	m.messages[message.ID] = message
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id string) error {
	delete(m.messages, id)
	return nil
}

func TestContactServiceSubmit(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, validator.New(), zap.NewNop())

	message, err := svc.Submit(context.Background(), SubmitContactRequest{
		Name:    "Karim",
		Email:   "karim@example.com",
		Message: "When does the library open?",
	})
	require.NoError(t, err)
	assert.Contains(t, repo.messages, message.ID)
	assert.Equal(t, "Karim", message.Name)
}

func TestContactServiceSubmitValidation(t *testing.T) {
	svc := NewContactService(newMockContactRepo(), validator.New(), zap.NewNop())

	_, err := svc.Submit(context.Background(), SubmitContactRequest{Name: "Karim", Email: "bad"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestContactServiceDeleteMissing(t *testing.T) {
	svc := NewContactService(newMockContactRepo(), validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
