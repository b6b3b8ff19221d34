package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type TeamMemberRepository interface {
	Create(member *model.TeamMember) error
	FindByID(id int64, opts ...QueryOption) (*model.TeamMember, error)
	Exists(teamID, userID int64) (bool, error)
	ListByTeam(teamID int64) ([]*model.TeamMember, error)
	Update(member *model.TeamMember) error
	Delete(id int64) error
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(member *model.TeamMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create team member", err)
	}
	return nil
}

func (r *teamMemberRepository) FindByID(id int64, opts ...QueryOption) (*model.TeamMember, error) {
	var member model.TeamMember
	err := applyOptions(r.db, opts).First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query team member", err)
	}
	return &member, nil
}

func (r *teamMemberRepository) Exists(teamID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).Count(&count).Error
	if err != nil {
		return false, responses.Wrap(responses.CodeInternalError, "failed to query team member", err)
	}
	return count > 0, nil
}

func (r *teamMemberRepository) ListByTeam(teamID int64) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).
		Order("id ASC").Find(&members).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query team members", err)
	}
	return members, nil
}

func (r *teamMemberRepository) Update(member *model.TeamMember) error {
	if err := r.db.Save(member).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update team member", err)
	}
	return nil
}

func (r *teamMemberRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.TeamMember{}, id).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete team member", err)
	}
	return nil
}
