package scheduler_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Employeest/employeest-be/internal/scheduler"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestScheduler_TriggerTokenPurge(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := scheduler.NewScheduler(gormDB, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `auth_tokens` WHERE expires_at < \\?").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	purged, err := s.TriggerTokenPurge()

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduler_TriggerTokenPurge_NothingExpired(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	s := scheduler.NewScheduler(gormDB, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `auth_tokens` WHERE expires_at < \\?").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	purged, err := s.TriggerTokenPurge()

	require.NoError(t, err)
	assert.Zero(t, purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}
