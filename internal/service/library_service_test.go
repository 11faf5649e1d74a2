package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type mockLibraryRepo struct {
	registrations map[string]*models.LibraryRegistration
	createErr     error
}

func newMockLibraryRepo() *mockLibraryRepo {
	return &mockLibraryRepo{registrations: map[string]*models.LibraryRegistration{}}
}

func (m *mockLibraryRepo) List(ctx context.Context) ([]models.LibraryRegistration, error) {
	out := make([]models.LibraryRegistration, 0, len(m.registrations))
	for _, r := range m.registrations {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockLibraryRepo) FindByID(ctx context.Context, id string) (*models.LibraryRegistration, error) {
	r, ok := m.registrations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return r, nil
}

func (m *mockLibraryRepo) Create(ctx context.Context, registration *models.LibraryRegistration) error {
	if m.createErr != nil {
		return m.createErr
	}
	if registration.ID == "" {
		registration.ID = "reg-1"
	}
	m.registrations[registration.ID] = registration
	return nil
}

func (m *mockLibraryRepo) Delete(ctx context.Context, id string) error {
	delete(m.registrations, id)
	return nil
}

func libraryRequest() RegisterLibraryRequest {
	promise := true
	return RegisterLibraryRequest{
		Name:          "Yacine",
		Birthdate:     time.Date(2008, 4, 12, 0, 0, 0, 0, time.UTC),
		School:        "Lycee Ibn Khaldoun",
		SchoolYear:    "2AS",
		RoomNumber:    "12",
		Wilaya:        "Algiers",
		Phone:         "0550000000",
		Email:         "yacine@example.com",
		PrayerPromise: &promise,
		Picture:       strings.NewReader("image-bytes"),
		Filename:      "pfp.jpg",
		ContentType:   "image/jpeg",
	}
}

func TestLibraryServiceRegister(t *testing.T) {
	repo := newMockLibraryRepo()
	store := &mockObjectStore{}
	sender := &mockSender{}
	svc := NewLibraryService(repo, store, sender, validator.New(), zap.NewNop())

	registration, err := svc.Register(context.Background(), libraryRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, registration.ID)
	assert.True(t, registration.PrayerPromise)
	assert.Contains(t, registration.PictureURL, "https://cdn.example.com/library/")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "yacine@example.com", sender.sent[0].To)
}

func TestLibraryServiceRegisterRequiresPicture(t *testing.T) {
	svc := NewLibraryService(newMockLibraryRepo(), &mockObjectStore{}, &mockSender{}, validator.New(), zap.NewNop())

	req := libraryRequest()
	req.Picture = nil
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLibraryServiceRegisterRequiresPrayerPromise(t *testing.T) {
	svc := NewLibraryService(newMockLibraryRepo(), &mockObjectStore{}, &mockSender{}, validator.New(), zap.NewNop())

	req := libraryRequest()
	req.PrayerPromise = nil
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLibraryServiceRegisterUploadFailureAborts(t *testing.T) {
	repo := newMockLibraryRepo()
	store := &mockObjectStore{uploadErr: errors.New("bucket unavailable")}
	svc := NewLibraryService(repo, store, &mockSender{}, validator.New(), zap.NewNop())

	_, err := svc.Register(context.Background(), libraryRequest())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Empty(t, repo.registrations)
}

func TestLibraryServiceRegisterConfirmationFailureIgnored(t *testing.T) {
	repo := newMockLibraryRepo()
	sender := &mockSender{sendErr: errors.New("connection refused")}
	svc := NewLibraryService(repo, &mockObjectStore{}, sender, validator.New(), zap.NewNop())

	registration, err := svc.Register(context.Background(), libraryRequest())
	require.NoError(t, err)
	assert.Contains(t, repo.registrations, registration.ID)
}

func TestLibraryServiceExportCSV(t *testing.T) {
	repo := newMockLibraryRepo()
	repo.registrations["reg-1"] = &models.LibraryRegistration{
		ID: "reg-1", Name: "Yacine", Email: "yacine@example.com",
		Birthdate: time.Date(2008, 4, 12, 0, 0, 0, 0, time.UTC),
	}
	svc := NewLibraryService(repo, &mockObjectStore{}, &mockSender{}, validator.New(), zap.NewNop())

	payload, contentType, err := svc.Export(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	body := string(payload)
	assert.Contains(t, body, "Name")
	assert.Contains(t, body, "Yacine")
	assert.Contains(t, body, "2008-04-12")
}

func TestLibraryServiceExportPDF(t *testing.T) {
	svc := NewLibraryService(newMockLibraryRepo(), &mockObjectStore{}, &mockSender{}, validator.New(), zap.NewNop())

	payload, contentType, err := svc.Export(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.NotEmpty(t, payload)
}

func TestLibraryServiceExportUnknownFormat(t *testing.T) {
	svc := NewLibraryService(newMockLibraryRepo(), &mockObjectStore{}, &mockSender{}, validator.New(), zap.NewNop())

	_, _, err := svc.Export(context.Background(), "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
