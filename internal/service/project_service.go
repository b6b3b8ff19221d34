package service

import (
	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type ProjectService interface {
	Create(actor auth.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(id int64) (*dto.ProjectResponse, error)
	List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error)
	Update(actor auth.Actor, id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(actor auth.Actor, id int64) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	teamRepo    repository.TeamRepository
	logger      *zap.Logger
}

func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository,
	teamRepo repository.TeamRepository, logger *zap.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

func (s *projectService) Create(actor auth.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &model.Project{
		Name:    req.Name,
		OwnerID: actor.ID,
		Status:  constants.ProjectStatusDraft,
	}
	if req.Description != "" {
		project.Description = &req.Description
	}
	if req.Status != "" {
		project.Status = req.Status
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	if len(req.ManagerIDs) > 0 {
		managers, err := s.loadUsers(req.ManagerIDs)
		if err != nil {
			return nil, err
		}
		if err := s.projectRepo.ReplaceManagers(project, managers); err != nil {
			return nil, err
		}
	}
	if len(req.TeamIDs) > 0 {
		teams, err := s.loadTeams(req.TeamIDs)
		if err != nil {
			return nil, err
		}
		if err := s.projectRepo.ReplaceTeams(project, teams); err != nil {
			return nil, err
		}
	}

	s.logger.Info("project created",
		zap.Int64("project_id", project.ID),
		zap.Int64("owner_id", actor.ID))

	return s.GetByID(project.ID)
}

func (s *projectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id,
		repository.WithPreload("Owner"),
		repository.WithPreload("Managers"),
		repository.WithPreload("Tasks"),
		repository.WithPreload("Tasks.Assignee"))
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project), nil
}

func (s *projectService) List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error) {
	projects, total, err := s.projectRepo.List(query.Status, query.Search, query.GetOffset(), query.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	results := make([]*dto.ProjectResponse, len(projects))
	for i, project := range projects {
		results[i] = dto.NewProjectResponse(project)
	}
	return results, total, nil
}

func (s *projectService) Update(actor auth.Actor, id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindProject, project) {
		return nil, responses.ErrForbidden
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	if req.ManagerIDs != nil {
		managers, err := s.loadUsers(*req.ManagerIDs)
		if err != nil {
			return nil, err
		}
		if err := s.projectRepo.ReplaceManagers(project, managers); err != nil {
			return nil, err
		}
	}
	if req.TeamIDs != nil {
		teams, err := s.loadTeams(*req.TeamIDs)
		if err != nil {
			return nil, err
		}
		if err := s.projectRepo.ReplaceTeams(project, teams); err != nil {
			return nil, err
		}
	}

	return s.GetByID(project.ID)
}

func (s *projectService) Delete(actor auth.Actor, id int64) error {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return err
	}

	if !auth.Allow(actor, auth.ActionDelete, auth.KindProject, project) {
		return responses.ErrForbidden
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("project deleted",
		zap.Int64("project_id", id),
		zap.Int64("actor_id", actor.ID))
	return nil
}

func (s *projectService) loadUsers(ids []int64) ([]model.User, error) {
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.FindByID(id)
		if err != nil {
			return nil, responses.New(responses.CodeBadRequest, "manager user does not exist")
		}
		users = append(users, *user)
	}
	return users, nil
}

func (s *projectService) loadTeams(ids []int64) ([]model.Team, error) {
	teams := make([]model.Team, 0, len(ids))
	for _, id := range ids {
		team, err := s.teamRepo.FindByID(id)
		if err != nil {
			return nil, responses.New(responses.CodeBadRequest, "team does not exist")
		}
		teams = append(teams, *team)
	}
	return teams, nil
}
