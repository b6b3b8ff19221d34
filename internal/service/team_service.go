package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type TeamService interface {
	Create(actor auth.Actor, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetByID(id int64) (*dto.TeamResponse, error)
	List(query *dto.PageQuery) ([]*dto.TeamResponse, int64, error)
	Update(actor auth.Actor, id int64, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(actor auth.Actor, id int64) error
}

type teamService struct {
	teamRepo repository.TeamRepository
	logger   *zap.Logger
}

func NewTeamService(teamRepo repository.TeamRepository, logger *zap.Logger) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (s *teamService) Create(actor auth.Actor, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	taken, err := s.teamRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, responses.New(responses.CodeBadRequest,
			fmt.Sprintf("team %s already exists", req.Name))
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor.ID,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, err
	}

	s.logger.Info("team created",
		zap.Int64("team_id", team.ID),
		zap.Int64("owner_id", actor.ID))

	return s.GetByID(team.ID)
}

func (s *teamService) GetByID(id int64) (*dto.TeamResponse, error) {
	team, err := s.teamRepo.FindByID(id,
		repository.WithPreload("Owner"),
		repository.WithPreload("Members"),
		repository.WithPreload("Members.User"))
	if err != nil {
		return nil, err
	}
	return dto.NewTeamResponse(team), nil
}

func (s *teamService) List(query *dto.PageQuery) ([]*dto.TeamResponse, int64, error) {
	teams, total, err := s.teamRepo.List(query.Search, query.GetOffset(), query.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	results := make([]*dto.TeamResponse, len(teams))
	for i, team := range teams {
		results[i] = dto.NewTeamResponse(team)
	}
	return results, total, nil
}

func (s *teamService) Update(actor auth.Actor, id int64, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindTeam, team) {
		return nil, responses.ErrForbidden
	}

	if req.Name != nil && *req.Name != team.Name {
		taken, err := s.teamRepo.ExistsByName(*req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, responses.New(responses.CodeBadRequest,
				fmt.Sprintf("team %s already exists", *req.Name))
		}
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = req.Description
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, err
	}
	return s.GetByID(team.ID)
}

func (s *teamService) Delete(actor auth.Actor, id int64) error {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		return err
	}

	if !auth.Allow(actor, auth.ActionDelete, auth.KindTeam, team) {
		return responses.ErrForbidden
	}

	if err := s.teamRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("team deleted",
		zap.Int64("team_id", id),
		zap.Int64("actor_id", actor.ID))
	return nil
}
