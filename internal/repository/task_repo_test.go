package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Employeest/employeest-be/internal/repository"
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

func TestTaskRepository_ListDoneWithPointsByProject(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	since := time.Now().AddDate(0, 0, -90)
	rows := sqlmock.NewRows([]string{"id", "project_id", "name", "status", "story_points"}).
		AddRow(1, 7, "implement login", "DONE", 8).
		AddRow(2, 7, "wire middleware", "DONE", 2)

	mock.ExpectQuery("SELECT \\* FROM `tasks` WHERE \\(project_id = \\? AND status = \\? AND story_points IS NOT NULL AND updated_at >= \\?\\)").
		WithArgs(int64(7), "DONE", sqlmock.AnyArg()).
		WillReturnRows(rows)

	tasks, err := taskRepo.ListDoneWithPointsByProject(7, since)

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, 8, *tasks[0].StoryPoints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_CountByProjectOwnerAndStatus(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tasks` JOIN projects ON projects.id = tasks.project_id").
		WithArgs(int64(3), "TODO").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := taskRepo.CountByProjectOwnerAndStatus(3, "TODO")

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_DistinctProjectIDsByAssignee(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery("SELECT DISTINCT `project_id` FROM `tasks`").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(1).AddRow(9))

	ids, err := taskRepo.DistinctProjectIDsByAssignee(5)

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
