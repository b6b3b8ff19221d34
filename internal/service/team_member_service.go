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

type TeamMemberService interface {
	Add(actor auth.Actor, teamID int64, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error)
	ListByTeam(teamID int64) ([]*dto.TeamMemberResponse, error)
	Update(actor auth.Actor, teamID, memberID int64, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	Remove(actor auth.Actor, teamID, memberID int64) error
}

type teamMemberService struct {
	memberRepo repository.TeamMemberRepository
	teamRepo   repository.TeamRepository
	userRepo   repository.UserRepository
	logger     *zap.Logger
}

func NewTeamMemberService(memberRepo repository.TeamMemberRepository, teamRepo repository.TeamRepository,
	userRepo repository.UserRepository, logger *zap.Logger) TeamMemberService {
	return &teamMemberService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Add is gated by the team-owner check before the duplicate check so that a
// non-owner learns nothing about existing memberships.
func (s *teamMemberService) Add(actor auth.Actor, teamID int64, req *dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != actor.ID {
		return nil, responses.ErrForbidden
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, responses.New(responses.CodeBadRequest, "user does not exist")
	}

	exists, err := s.memberRepo.Exists(teamID, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, responses.New(responses.CodeConflict, "user is already a member of this team")
	}

	member := &model.TeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   constants.TeamRoleMember,
	}
	if req.Role != "" {
		member.Role = req.Role
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}

	s.logger.Info("team member added",
		zap.Int64("team_id", teamID),
		zap.Int64("user_id", req.UserID))

	return s.get(member.ID)
}

func (s *teamMemberService) ListByTeam(teamID int64) ([]*dto.TeamMemberResponse, error) {
	if _, err := s.teamRepo.FindByID(teamID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTeam(teamID)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.TeamMemberResponse, len(members))
	for i, member := range members {
		results[i] = dto.NewTeamMemberResponse(member)
	}
	return results, nil
}

func (s *teamMemberService) Update(actor auth.Actor, teamID, memberID int64, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := s.loadForTeam(teamID, memberID)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindTeamMember, member) {
		return nil, responses.ErrForbidden
	}

	member.Role = req.Role
	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}
	return s.get(member.ID)
}

func (s *teamMemberService) Remove(actor auth.Actor, teamID, memberID int64) error {
	member, err := s.loadForTeam(teamID, memberID)
	if err != nil {
		return err
	}

	if !auth.Allow(actor, auth.ActionDelete, auth.KindTeamMember, member) {
		return responses.ErrForbidden
	}

	if err := s.memberRepo.Delete(memberID); err != nil {
		return err
	}

	s.logger.Info("team member removed",
		zap.Int64("team_id", teamID),
		zap.Int64("member_id", memberID))
	return nil
}

// loadForTeam loads a membership with its team, which the policy inspects,
// and treats a membership under the wrong team id as absent.
func (s *teamMemberService) loadForTeam(teamID, memberID int64) (*model.TeamMember, error) {
	member, err := s.memberRepo.FindByID(memberID, repository.WithPreload("Team"))
	if err != nil {
		return nil, err
	}
	if member.TeamID != teamID {
		return nil, responses.ErrRecordNotFound
	}
	return member, nil
}

func (s *teamMemberService) get(id int64) (*dto.TeamMemberResponse, error) {
	member, err := s.memberRepo.FindByID(id, repository.WithPreload("User"))
	if err != nil {
		return nil, err
	}
	return dto.NewTeamMemberResponse(member), nil
}
