package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

func TestLibraryTimesUpsertStampsUpdatedAt(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLibraryTimesRepository(db)

	mock.ExpectExec("INSERT INTO library_times").WillReturnResult(sqlmock.NewResult(0, 1))

	open := "10:00"
	closeAt := "18:00"
	hours := &models.OpeningHours{Day: models.Saturday, Open: &open, Close: &closeAt}
	err := repo.Upsert(context.Background(), hours)
	require.NoError(t, err)
	assert.False(t, hours.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLibraryTimesList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLibraryTimesRepository(db)

	rows := sqlmock.NewRows([]string{"day", "open_time", "close_time", "is_closed", "updated_at"}).
		AddRow("saturday", "10:00", "18:00", false, time.Now()).
		AddRow("friday", nil, nil, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT day, open_time, close_time, is_closed, updated_at FROM library_times")).
		WillReturnRows(rows)

	hours, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, models.Saturday, hours[0].Day)
	assert.True(t, hours[1].IsClosed)
	assert.Nil(t, hours[1].Open)
	assert.NoError(t, mock.ExpectationsWereMet())
}
