package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/Employeest/employeest-be/internal/api/middleware"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
)

// injectActor stands in for the auth middleware in route tests.
func injectActor(actor auth.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActorKey, actor)
		c.Next()
	}
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(req *dto.RegisterRequest) (*dto.ProfileResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

func (m *mockAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *mockAuthService) Logout(tokenKey string) error {
	args := m.Called(tokenKey)
	return args.Error(0)
}

func (m *mockAuthService) Profile(userID int64) (*dto.ProfileResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

func (m *mockAuthService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

type mockTaskService struct {
	mock.Mock
}

func (m *mockTaskService) Create(actor auth.Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	args := m.Called(actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TaskResponse), args.Error(1)
}

func (m *mockTaskService) GetByID(id int64) (*dto.TaskResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TaskResponse), args.Error(1)
}

func (m *mockTaskService) List(query *dto.TaskListQuery) ([]*dto.TaskResponse, int64, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*dto.TaskResponse), args.Get(1).(int64), args.Error(2)
}

func (m *mockTaskService) Update(actor auth.Actor, id int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	args := m.Called(actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TaskResponse), args.Error(1)
}

func (m *mockTaskService) Delete(actor auth.Actor, id int64) error {
	args := m.Called(actor, id)
	return args.Error(0)
}

func (m *mockTaskService) StartProgress(actor auth.Actor, id int64) (*dto.TransitionResponse, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransitionResponse), args.Error(1)
}

func (m *mockTaskService) MarkAsDone(actor auth.Actor, id int64) (*dto.TransitionResponse, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransitionResponse), args.Error(1)
}

func (m *mockTaskService) History(id int64) ([]*dto.TaskHistoryResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.TaskHistoryResponse), args.Error(1)
}

type mockStatisticsService struct {
	mock.Mock
}

func (m *mockStatisticsService) ProjectVelocityChart(ctx context.Context, actor auth.Actor, projectID int64) (*dto.ChartURLResponse, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChartURLResponse), args.Error(1)
}

func (m *mockStatisticsService) ProjectTaskStatusChart(ctx context.Context, actor auth.Actor, projectID int64) (*dto.ChartURLResponse, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChartURLResponse), args.Error(1)
}

func (m *mockStatisticsService) BusinessStoryPointsChart(ctx context.Context) (*dto.ChartURLResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChartURLResponse), args.Error(1)
}

func (m *mockStatisticsService) PersonalCompletionChart(ctx context.Context, actor auth.Actor) (*dto.ChartURLResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChartURLResponse), args.Error(1)
}

type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) Create(actor auth.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	args := m.Called(actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*dto.ProjectResponse), args.Get(1).(int64), args.Error(2)
}

func (m *mockProjectService) Update(actor auth.Actor, id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	args := m.Called(actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) Delete(actor auth.Actor, id int64) error {
	args := m.Called(actor, id)
	return args.Error(0)
}
