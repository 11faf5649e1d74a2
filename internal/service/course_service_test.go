package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type mockCourseRepo struct {
	registrations map[string]*models.CourseRegistration
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{registrations: map[string]*models.CourseRegistration{}}
}

func (m *mockCourseRepo) List(ctx context.Context) ([]models.CourseRegistration, error) {
	out := make([]models.CourseRegistration, 0, len(m.registrations))
	for _, r := range m.registrations {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id string) (*models.CourseRegistration, error) {
	r, ok := m.registrations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return r, nil
}

func (m *mockCourseRepo) Create(ctx context.Context, registration *models.CourseRegistration) error {
	if registration.ID == "" {
		registration.ID = "course-1"
	}
	m.registrations[registration.ID] = registration
	return nil
}

func (m *mockCourseRepo) Delete(ctx context.Context, id string) error {
	delete(m.registrations, id)
	return nil
}

func courseRequest() RegisterCourseRequest {
	commitment := true
	return RegisterCourseRequest{
		Name:         "Amine",
		Birthdate:    "2005-09-01",
		State:        "Algiers",
		School:       "USTHB",
		Phone:        "0550000001",
		Email:        "amine@example.com",
		Memorization: "10 hizb",
		SessionTime:  "after maghrib",
		Commitment:   &commitment,
	}
}

func TestCourseServiceRegister(t *testing.T) {
	repo := newMockCourseRepo()
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	registration, err := svc.Register(context.Background(), courseRequest())
	require.NoError(t, err)
	assert.True(t, registration.Commitment)
	assert.Equal(t, time.Date(2005, 9, 1, 0, 0, 0, 0, time.UTC), registration.Birthdate)
	assert.Contains(t, repo.registrations, registration.ID)
}

func TestCourseServiceRegisterRejectsBadBirthdate(t *testing.T) {
	svc := NewCourseService(newMockCourseRepo(), validator.New(), zap.NewNop())

	req := courseRequest()
	req.Birthdate = "10/05/2001"
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCourseServiceRegisterRequiresCommitment(t *testing.T) {
	svc := NewCourseService(newMockCourseRepo(), validator.New(), zap.NewNop())

	req := courseRequest()
	req.Commitment = nil
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCourseServiceRegisterRequiredFields(t *testing.T) {
	svc := NewCourseService(newMockCourseRepo(), validator.New(), zap.NewNop())

	req := courseRequest()
	req.Memorization = ""
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCourseServiceExportCSV(t *testing.T) {
	repo := newMockCourseRepo()
	repo.registrations["course-1"] = &models.CourseRegistration{
		ID: "course-1", Name: "Amine", Email: "amine@example.com",
		Memorization: "10 hizb", SessionTime: "after maghrib",
	}
	svc := NewCourseService(repo, validator.New(), zap.NewNop())

	payload, contentType, err := svc.Export(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "Amine")
}

func TestCourseServiceDeleteMissing(t *testing.T) {
	svc := NewCourseService(newMockCourseRepo(), validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
