package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type TeamRepository interface {
	Create(team *model.Team) error
	FindByID(id int64, opts ...QueryOption) (*model.Team, error)
	ExistsByName(name string) (bool, error)
	List(keyword string, offset, limit int) ([]*model.Team, int64, error)
	ListByMember(userID int64) ([]*model.Team, error)
	Update(team *model.Team) error
	Delete(id int64) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *model.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create team", err)
	}
	return nil
}

func (r *teamRepository) FindByID(id int64, opts ...QueryOption) (*model.Team, error) {
	var team model.Team
	err := applyOptions(r.db, opts).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query team", err)
	}
	return &team, nil
}

func (r *teamRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Team{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, responses.Wrap(responses.CodeInternalError, "failed to query team", err)
	}
	return count > 0, nil
}

func (r *teamRepository) List(keyword string, offset, limit int) ([]*model.Team, int64, error) {
	query := r.db.Model(&model.Team{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to count teams", err)
	}

	var teams []*model.Team
	err := query.Preload("Owner").Preload("Members").Preload("Members.User").
		Order("name ASC").Offset(offset).Limit(limit).Find(&teams).Error
	if err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to query teams", err)
	}
	return teams, total, nil
}

// ListByMember returns teams the user belongs to through a membership row.
func (r *teamRepository) ListByMember(userID int64) ([]*model.Team, error) {
	var teams []*model.Team
	err := r.db.Preload("Owner").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.name ASC").Find(&teams).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query teams", err)
	}
	return teams, nil
}

func (r *teamRepository) Update(team *model.Team) error {
	if err := r.db.Save(team).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update team", err)
	}
	return nil
}

func (r *teamRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Team{}, id).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete team", err)
	}
	return nil
}
