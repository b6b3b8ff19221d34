package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

func newTaskService(t *testing.T) (service.TaskService, *mockTaskRepo, *mockProjectRepo) {
	t.Helper()
	taskRepo := new(mockTaskRepo)
	projectRepo := new(mockProjectRepo)
	svc := service.NewTaskService(taskRepo, projectRepo, nil, nil, nil, zap.NewNop())
	return svc, taskRepo, projectRepo
}

func assignedTask(id, assigneeID int64, name string) *model.Task {
	return &model.Task{
		BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: id}},
		ProjectID:               3,
		Name:                    name,
		Status:                  constants.TaskStatusTodo,
		Priority:                constants.TaskPriorityMedium,
		AssigneeID:              &assigneeID,
		Project:                 &model.Project{Name: "Apollo"},
	}
}

func TestTaskUpdate_SelfParentRejected(t *testing.T) {
	svc, taskRepo, _ := newTaskService(t)
	actor := auth.Actor{ID: 7}

	taskRepo.On("FindByID", int64(42)).Return(assignedTask(42, 7, "Write onboarding docs"), nil)

	_, err := svc.Update(actor, 42, &dto.UpdateTaskRequest{ParentTaskID: int64p(42)})

	require.Error(t, err)
	var appErr *responses.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, responses.CodeBadRequest, appErr.Code)
	assert.Equal(t, "Task cannot be its own parent.", appErr.Message)
	taskRepo.AssertNotCalled(t, "UpdateWithHistory")
}

func TestTaskUpdate_OtherParentAccepted(t *testing.T) {
	svc, taskRepo, _ := newTaskService(t)
	actor := auth.Actor{ID: 7}

	taskRepo.On("FindByID", int64(42)).Return(assignedTask(42, 7, "Write onboarding docs"), nil)
	taskRepo.On("UpdateWithHistory", mock.AnythingOfType("*model.Task"), mock.Anything).Return(nil)

	resp, err := svc.Update(actor, 42, &dto.UpdateTaskRequest{ParentTaskID: int64p(41)})

	require.NoError(t, err)
	require.NotNil(t, resp.ParentTaskID)
	assert.Equal(t, int64(41), *resp.ParentTaskID)
}

func TestTaskUpdate_RecordsFieldHistory(t *testing.T) {
	svc, taskRepo, _ := newTaskService(t)
	actor := auth.Actor{ID: 7}

	taskRepo.On("FindByID", int64(42)).Return(assignedTask(42, 7, "Write onboarding docs"), nil)

	var recorded []*model.TaskHistory
	taskRepo.On("UpdateWithHistory", mock.AnythingOfType("*model.Task"), mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).([]*model.TaskHistory)
		}).
		Return(nil)

	newName := "Review onboarding docs"
	resp, err := svc.Update(actor, 42, &dto.UpdateTaskRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)

	require.Len(t, recorded, 1)
	assert.Equal(t, constants.HistoryFieldName, recorded[0].FieldChanged)
	assert.Equal(t, "Write onboarding docs", recorded[0].OldValue)
	assert.Equal(t, newName, recorded[0].NewValue)
	assert.Equal(t, actor.ID, recorded[0].ActorID)
}

func TestTaskList_UnknownStatusInRejected(t *testing.T) {
	svc, taskRepo, _ := newTaskService(t)

	_, _, err := svc.List(&dto.TaskListQuery{StatusIn: "TODO,SHIPPED"})

	require.Error(t, err)
	var appErr *responses.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, responses.CodeBadRequest, appErr.Code)
	assert.Equal(t, "status__in contains an unknown status", appErr.Message)
	taskRepo.AssertNotCalled(t, "List")
}

func TestTaskList_StatusInFilterForwarded(t *testing.T) {
	svc, taskRepo, _ := newTaskService(t)

	taskRepo.On("List", mock.MatchedBy(func(f repository.TaskFilter) bool {
		return len(f.StatusIn) == 2 &&
			f.StatusIn[0] == constants.TaskStatusTodo &&
			f.StatusIn[1] == constants.TaskStatusInProgress
	}), 0, 10).Return([]*model.Task{assignedTask(42, 7, "Write onboarding docs")}, int64(1), nil)

	results, total, err := svc.List(&dto.TaskListQuery{StatusIn: "TODO,IN_PROGRESS"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Write onboarding docs", results[0].Name)
}

func TestTaskUpdate_NonAssigneeForbidden(t *testing.T) {
	svc, taskRepo, _ := newTaskService(t)
	actor := auth.Actor{ID: 99}

	taskRepo.On("FindByID", int64(42)).Return(assignedTask(42, 7, "Write onboarding docs"), nil)

	newName := "Hijacked"
	_, err := svc.Update(actor, 42, &dto.UpdateTaskRequest{Name: &newName})

	require.Error(t, err)
	var appErr *responses.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, responses.CodeForbidden, appErr.Code)
	taskRepo.AssertNotCalled(t, "UpdateWithHistory")
}
