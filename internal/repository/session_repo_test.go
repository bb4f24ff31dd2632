package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "agencyflow/pkg/errors"
)

func TestSessionRepository_FindByToken(t *testing.T) {
	t.Run("命中会话行", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewSessionRepository(gdb)

		now := time.Now()
		mock.ExpectQuery("SELECT \\* FROM `sessions` WHERE token = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}).
				AddRow(1, 9, "tok-abc", now.Add(time.Hour), now))

		session, err := repo.FindByToken("tok-abc")
		require.NoError(t, err)
		assert.Equal(t, int64(9), session.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("不存在返回ErrRecordNotFound", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewSessionRepository(gdb)

		mock.ExpectQuery("SELECT \\* FROM `sessions` WHERE token = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}))

		_, err := repo.FindByToken("tok-missing")
		assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
	})
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSessionRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `sessions` WHERE expires_at < \\?").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	purged, err := repo.DeleteExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteByUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewSessionRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `sessions` WHERE user_id = \\?").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteByUser(9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
