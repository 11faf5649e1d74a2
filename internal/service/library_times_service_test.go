package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

type mockLibraryTimesRepo struct {
	byDay map[models.Weekday]*models.OpeningHours
}

func newMockLibraryTimesRepo() *mockLibraryTimesRepo {
	return &mockLibraryTimesRepo{byDay: map[models.Weekday]*models.OpeningHours{}}
}

func (m *mockLibraryTimesRepo) List(ctx context.Context) ([]models.OpeningHours, error) {
	out := make([]models.OpeningHours, 0, len(m.byDay))
	for _, h := range m.byDay {
		out = append(out, *h)
	}
	return out, nil
}

func (m *mockLibraryTimesRepo) Upsert(ctx context.Context, hours *models.OpeningHours) error {
	m.byDay[hours.Day] = hours
	return nil
}

func TestLibraryTimesServiceSetOpenDay(t *testing.T) {
	repo := newMockLibraryTimesRepo()
	svc := NewLibraryTimesService(repo, validator.New(), zap.NewNop())

	hours, err := svc.Set(context.Background(), SetLibraryTimesRequest{Day: models.Monday, Open: "09:00", Close: "17:00"})
	require.NoError(t, err)
	require.NotNil(t, hours.Open)
	require.NotNil(t, hours.Close)
	assert.Equal(t, "09:00", *hours.Open)
	assert.Equal(t, "17:00", *hours.Close)
	assert.False(t, hours.IsClosed)
}

func TestLibraryTimesServiceSetClosedDayClearsTimes(t *testing.T) {
	repo := newMockLibraryTimesRepo()
	svc := NewLibraryTimesService(repo, validator.New(), zap.NewNop())

	hours, err := svc.Set(context.Background(), SetLibraryTimesRequest{Day: models.Friday, Open: "09:00", Close: "17:00", IsClosed: true})
	require.NoError(t, err)
	assert.True(t, hours.IsClosed)
	assert.Nil(t, hours.Open)
	assert.Nil(t, hours.Close)
	assert.Nil(t, repo.byDay[models.Friday].Open)
}

func TestLibraryTimesServiceSetOpenDayRequiresBothTimes(t *testing.T) {
	svc := NewLibraryTimesService(newMockLibraryTimesRepo(), validator.New(), zap.NewNop())

	for _, req := range []SetLibraryTimesRequest{
		{Day: models.Monday, Open: "09:00"},
		{Day: models.Monday, Close: "17:00"},
		{Day: models.Monday},
	} {
		_, err := svc.Set(context.Background(), req)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestLibraryTimesServiceSetRejectsUnknownDay(t *testing.T) {
	svc := NewLibraryTimesService(newMockLibraryTimesRepo(), validator.New(), zap.NewNop())

	_, err := svc.Set(context.Background(), SetLibraryTimesRequest{Day: "funday", Open: "09:00", Close: "17:00"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLibraryTimesServiceSetReplacesDay(t *testing.T) {
	repo := newMockLibraryTimesRepo()
	svc := NewLibraryTimesService(repo, validator.New(), zap.NewNop())

	_, err := svc.Set(context.Background(), SetLibraryTimesRequest{Day: models.Monday, Open: "09:00", Close: "17:00"})
	require.NoError(t, err)
	_, err = svc.Set(context.Background(), SetLibraryTimesRequest{Day: models.Monday, IsClosed: true})
	require.NoError(t, err)

	require.Len(t, repo.byDay, 1)
	assert.True(t, repo.byDay[models.Monday].IsClosed)
}

func TestLibraryTimesServiceListOrdersByWeek(t *testing.T) {
	repo := newMockLibraryTimesRepo()
	svc := NewLibraryTimesService(repo, validator.New(), zap.NewNop())

	for _, day := range []models.Weekday{models.Friday, models.Saturday, models.Monday} {
		_, err := svc.Set(context.Background(), SetLibraryTimesRequest{Day: day, IsClosed: true})
		require.NoError(t, err)
	}

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, models.Saturday, listed[0].Day)
	assert.Equal(t, models.Monday, listed[1].Day)
	assert.Equal(t, models.Friday, listed[2].Day)
}
