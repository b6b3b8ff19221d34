package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

func newDashboardService(t *testing.T) (service.DashboardService, *mockProjectRepo, *mockTaskRepo, *mockTeamRepo) {
	t.Helper()
	projectRepo := new(mockProjectRepo)
	taskRepo := new(mockTaskRepo)
	teamRepo := new(mockTeamRepo)
	svc := service.NewDashboardService(projectRepo, taskRepo, teamRepo, zap.NewNop())
	return svc, projectRepo, taskRepo, teamRepo
}

func TestOwnerDashboard_EmployeeDenied(t *testing.T) {
	svc, _, _, _ := newDashboardService(t)

	_, err := svc.OwnerDashboard(auth.Actor{ID: 1, Role: constants.UserRoleEmployee})

	require.Error(t, err)
	var appErr *responses.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, responses.CodeForbidden, appErr.Code)
}

func TestOwnerDashboard_StaffAllowed(t *testing.T) {
	svc, projectRepo, taskRepo, _ := newDashboardService(t)
	staff := auth.Actor{ID: 1, Role: constants.UserRoleEmployee, IsStaff: true}

	projectRepo.On("CountByOwner", int64(1)).Return(int64(0), nil)
	projectRepo.On("CountByOwnerAndStatus", int64(1), constants.ProjectStatusActive).Return(int64(0), nil)
	taskRepo.On("CountByProjectOwner", int64(1)).Return(int64(0), nil)
	taskRepo.On("CountByProjectOwnerAndStatus", int64(1), constants.TaskStatusTodo).Return(int64(0), nil)
	taskRepo.On("CountByProjectOwnerAndStatus", int64(1), constants.TaskStatusInProgress).Return(int64(0), nil)
	taskRepo.On("CountByProjectOwnerAndStatus", int64(1), constants.TaskStatusDone).Return(int64(0), nil)
	projectRepo.On("ListByOwner", int64(1)).Return([]*model.Project{}, nil)

	resp, err := svc.OwnerDashboard(staff)

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestOwnerDashboard_Counts(t *testing.T) {
	svc, projectRepo, taskRepo, _ := newDashboardService(t)
	owner := auth.Actor{ID: 7, Role: constants.UserRoleOwner}

	projectRepo.On("CountByOwner", int64(7)).Return(int64(3), nil)
	projectRepo.On("CountByOwnerAndStatus", int64(7), constants.ProjectStatusActive).Return(int64(2), nil)
	taskRepo.On("CountByProjectOwner", int64(7)).Return(int64(10), nil)
	taskRepo.On("CountByProjectOwnerAndStatus", int64(7), constants.TaskStatusTodo).Return(int64(4), nil)
	taskRepo.On("CountByProjectOwnerAndStatus", int64(7), constants.TaskStatusInProgress).Return(int64(3), nil)
	taskRepo.On("CountByProjectOwnerAndStatus", int64(7), constants.TaskStatusDone).Return(int64(3), nil)
	projectRepo.On("ListByOwner", int64(7)).Return([]*model.Project{
		{BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: 1}}, Name: "Apollo", OwnerID: 7},
	}, nil)

	resp, err := svc.OwnerDashboard(owner)

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.SummaryStats.TotalProjects)
	assert.Equal(t, int64(2), resp.SummaryStats.ActiveProjects)
	assert.Equal(t, int64(10), resp.SummaryStats.TotalTasks)
	assert.Equal(t, int64(4), resp.SummaryStats.TasksTodo)
	assert.Len(t, resp.ProjectsList, 1)
}

func TestEmployeeDashboard_UnionsProjectSources(t *testing.T) {
	svc, projectRepo, taskRepo, teamRepo := newDashboardService(t)
	actor := auth.Actor{ID: 4, Role: constants.UserRoleEmployee}

	taskRepo.On("DistinctProjectIDsByAssignee", int64(4)).Return([]int64{1, 2}, nil)
	projectRepo.On("ListIDsByMemberTeams", int64(4)).Return([]int64{2, 3}, nil)
	projectRepo.On("ListByIDs", []int64{1, 2, 3}).Return([]*model.Project{
		{BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: 1}}},
		{BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: 2}}},
		{BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: 3}}},
	}, nil)
	teamRepo.On("ListByMember", int64(4)).Return([]*model.Team{
		{BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: 9}}, Name: "platform"},
	}, nil)
	taskRepo.On("ListOpenByAssignee", int64(4)).Return([]*model.Task{
		{BaseModelWithSoftDelete: model.BaseModelWithSoftDelete{BaseModel: model.BaseModel{ID: 11}}, Status: constants.TaskStatusTodo},
	}, nil)

	resp, err := svc.EmployeeDashboard(actor)

	require.NoError(t, err)
	assert.Len(t, resp.MyProjects, 3)
	assert.Len(t, resp.MyTeams, 1)
	assert.Len(t, resp.MyCurrentTasks, 1)
	projectRepo.AssertExpectations(t)
}
