package service

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type DashboardService interface {
	OwnerDashboard(actor auth.Actor) (*dto.OwnerDashboardResponse, error)
	EmployeeDashboard(actor auth.Actor) (*dto.EmployeeDashboardResponse, error)
}

type dashboardService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	teamRepo    repository.TeamRepository
	logger      *zap.Logger
}

func NewDashboardService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository, logger *zap.Logger) DashboardService {
	return &dashboardService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

// OwnerDashboard is restricted to actors with the owner role; staff may view
// it too.
func (s *dashboardService) OwnerDashboard(actor auth.Actor) (*dto.OwnerDashboardResponse, error) {
	if actor.Role != constants.UserRoleOwner && !actor.IsStaff {
		return nil, responses.ErrForbidden
	}

	totalProjects, err := s.projectRepo.CountByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	activeProjects, err := s.projectRepo.CountByOwnerAndStatus(actor.ID, constants.ProjectStatusActive)
	if err != nil {
		return nil, err
	}

	totalTasks, err := s.taskRepo.CountByProjectOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	todoTasks, err := s.taskRepo.CountByProjectOwnerAndStatus(actor.ID, constants.TaskStatusTodo)
	if err != nil {
		return nil, err
	}
	inProgressTasks, err := s.taskRepo.CountByProjectOwnerAndStatus(actor.ID, constants.TaskStatusInProgress)
	if err != nil {
		return nil, err
	}
	doneTasks, err := s.taskRepo.CountByProjectOwnerAndStatus(actor.ID, constants.TaskStatusDone)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByOwner(actor.ID)
	if err != nil {
		return nil, err
	}
	projectsList := make([]*dto.ProjectResponse, len(projects))
	for i, project := range projects {
		projectsList[i] = dto.NewProjectResponse(project)
	}

	return &dto.OwnerDashboardResponse{
		SummaryStats: dto.OwnerSummaryStats{
			TotalProjects:   totalProjects,
			ActiveProjects:  activeProjects,
			TotalTasks:      totalTasks,
			TasksTodo:       todoTasks,
			TasksInProgress: inProgressTasks,
			TasksDone:       doneTasks,
		},
		ProjectsList: projectsList,
	}, nil
}

// EmployeeDashboard unions projects the actor is assigned tasks in with
// projects tied to the actor's teams.
func (s *dashboardService) EmployeeDashboard(actor auth.Actor) (*dto.EmployeeDashboardResponse, error) {
	assignedIDs, err := s.taskRepo.DistinctProjectIDsByAssignee(actor.ID)
	if err != nil {
		return nil, err
	}
	teamProjectIDs, err := s.projectRepo.ListIDsByMemberTeams(actor.ID)
	if err != nil {
		return nil, err
	}

	projectIDs := lo.Uniq(append(assignedIDs, teamProjectIDs...))
	projects, err := s.projectRepo.ListByIDs(projectIDs)
	if err != nil {
		return nil, err
	}
	myProjects := make([]*dto.ProjectSimpleResponse, len(projects))
	for i, project := range projects {
		myProjects[i] = dto.NewProjectSimpleResponse(project)
	}

	teams, err := s.teamRepo.ListByMember(actor.ID)
	if err != nil {
		return nil, err
	}
	myTeams := make([]*dto.TeamSimpleResponse, len(teams))
	for i, team := range teams {
		myTeams[i] = dto.NewTeamSimpleResponse(team)
	}

	tasks, err := s.taskRepo.ListOpenByAssignee(actor.ID)
	if err != nil {
		return nil, err
	}
	myTasks := make([]*dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		myTasks[i] = dto.NewTaskResponse(task)
	}

	return &dto.EmployeeDashboardResponse{
		MyProjects:     myProjects,
		MyTeams:        myTeams,
		MyCurrentTasks: myTasks,
	}, nil
}
