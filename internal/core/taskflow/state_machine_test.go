package taskflow_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/core/taskflow"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/constants"
	pkgErrors "github.com/Employeest/employeest-be/pkg/responses"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestStartProgress_FromTodo(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	sm := taskflow.NewStateMachine(gormDB, zap.NewNop())

	task := &model.Task{Status: constants.TaskStatusTodo}
	task.ID = 42

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tasks`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `task_history`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	msg, err := sm.StartProgress(7, task)

	assert.NoError(t, err)
	assert.Equal(t, "Task moved to In Progress", msg)
	assert.Equal(t, constants.TaskStatusInProgress, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartProgress_IllegalState(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	sm := taskflow.NewStateMachine(gormDB, zap.NewNop())

	for _, status := range []string{
		constants.TaskStatusInProgress,
		constants.TaskStatusInReview,
		constants.TaskStatusDone,
		constants.TaskStatusCancelled,
	} {
		task := &model.Task{Status: status}
		task.ID = 42

		_, err := sm.StartProgress(7, task)

		assert.Error(t, err)
		var appErr *pkgErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgErrors.CodeBadRequest, appErr.Code)
		assert.Equal(t, "Task cannot be moved to In Progress from current state", appErr.Message)
		assert.Equal(t, status, task.Status, "no mutation on illegal transition")
	}

	// no queries were issued at all
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsDone_FromInProgress(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	sm := taskflow.NewStateMachine(gormDB, zap.NewNop())

	task := &model.Task{Status: constants.TaskStatusInProgress}
	task.ID = 9

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tasks`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `task_history`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	msg, err := sm.MarkAsDone(7, task)

	assert.NoError(t, err)
	assert.Equal(t, "Task marked as Done", msg)
	assert.Equal(t, constants.TaskStatusDone, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsDone_FromTodoFails(t *testing.T) {
	gormDB, _ := setupMockDB(t)
	sm := taskflow.NewStateMachine(gormDB, zap.NewNop())

	task := &model.Task{Status: constants.TaskStatusTodo}
	task.ID = 9

	_, err := sm.MarkAsDone(7, task)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Task cannot be marked as Done from current state")
	assert.Equal(t, constants.TaskStatusTodo, task.Status)
}

func TestFire_StatusGuardConflict(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	sm := taskflow.NewStateMachine(gormDB, zap.NewNop())

	task := &model.Task{Status: constants.TaskStatusTodo}
	task.ID = 42

	// another writer moved the task between read and update
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tasks`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := sm.StartProgress(7, task)

	assert.Error(t, err)
	assert.Equal(t, constants.TaskStatusTodo, task.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
