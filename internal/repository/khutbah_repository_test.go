package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestKhutbahList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKhutbahRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "featured", "created_at"}).
		AddRow("1", "Patience", true, now).
		AddRow("2", "Gratitude", false, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, featured, created_at FROM khutbah_subjects ORDER BY created_at DESC")).
		WillReturnRows(rows)

	subjects, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, subjects, 2)
	assert.True(t, subjects[0].Featured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKhutbahCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKhutbahRepository(db)

	mock.ExpectExec("INSERT INTO khutbah_subjects").WillReturnResult(sqlmock.NewResult(1, 1))

	subject := &models.KhutbahSubject{Title: "Patience"}
	err := repo.Create(context.Background(), subject)
	require.NoError(t, err)
	assert.NotEmpty(t, subject.ID)
	assert.False(t, subject.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKhutbahSetFeaturedExclusiveRunsInTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKhutbahRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE khutbah_subjects SET featured = FALSE WHERE featured = TRUE")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE khutbah_subjects SET featured = TRUE WHERE id = $1")).
		WithArgs("42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetFeaturedExclusive(context.Background(), "42")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKhutbahSetFeaturedExclusiveRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKhutbahRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE khutbah_subjects SET featured = FALSE WHERE featured = TRUE")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.SetFeaturedExclusive(context.Background(), "42")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
