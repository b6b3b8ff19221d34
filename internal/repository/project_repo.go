package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64, opts ...QueryOption) (*model.Project, error)
	List(status string, keyword string, offset, limit int) ([]*model.Project, int64, error)
	ListByOwner(ownerID int64) ([]*model.Project, error)
	ListByIDs(ids []int64) ([]*model.Project, error)
	ListIDsByMemberTeams(userID int64) ([]int64, error)
	CountByOwner(ownerID int64) (int64, error)
	CountByOwnerAndStatus(ownerID int64, status string) (int64, error)
	Update(project *model.Project) error
	ReplaceManagers(project *model.Project, managers []model.User) error
	ReplaceTeams(project *model.Project, teams []model.Team) error
	Delete(id int64) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create project", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64, opts ...QueryOption) (*model.Project, error) {
	var project model.Project
	err := applyOptions(r.db, opts).First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query project", err)
	}
	return &project, nil
}

func (r *projectRepository) List(status string, keyword string, offset, limit int) ([]*model.Project, int64, error) {
	query := r.db.Model(&model.Project{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to count projects", err)
	}

	var projects []*model.Project
	err := query.Preload("Owner").Preload("Tasks").Preload("Tasks.Assignee").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to query projects", err)
	}
	return projects, total, nil
}

func (r *projectRepository) ListByOwner(ownerID int64) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Preload("Owner").Preload("Tasks").Preload("Tasks.Assignee").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query projects", err)
	}
	return projects, nil
}

func (r *projectRepository) ListByIDs(ids []int64) ([]*model.Project, error) {
	if len(ids) == 0 {
		return []*model.Project{}, nil
	}
	var projects []*model.Project
	err := r.db.Preload("Owner").Preload("Tasks").
		Where("id IN ?", ids).
		Order("name ASC").Find(&projects).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query projects", err)
	}
	return projects, nil
}

// ListIDsByMemberTeams returns ids of projects associated with any team the
// user belongs to.
func (r *projectRepository) ListIDsByMemberTeams(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Table("project_teams").
		Distinct("project_teams.project_id").
		Joins("JOIN team_members ON team_members.team_id = project_teams.team_id").
		Where("team_members.user_id = ?", userID).
		Pluck("project_teams.project_id", &ids).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query team projects", err)
	}
	return ids, nil
}

func (r *projectRepository) CountByOwner(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Project{}).Where("owner_id = ?", ownerID).Count(&count).Error
	if err != nil {
		return 0, responses.Wrap(responses.CodeInternalError, "failed to count projects", err)
	}
	return count, nil
}

func (r *projectRepository) CountByOwnerAndStatus(ownerID int64, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Project{}).
		Where("owner_id = ? AND status = ?", ownerID, status).Count(&count).Error
	if err != nil {
		return 0, responses.Wrap(responses.CodeInternalError, "failed to count projects", err)
	}
	return count, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update project", err)
	}
	return nil
}

func (r *projectRepository) ReplaceManagers(project *model.Project, managers []model.User) error {
	if err := r.db.Model(project).Association("Managers").Replace(managers); err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update project managers", err)
	}
	return nil
}

func (r *projectRepository) ReplaceTeams(project *model.Project, teams []model.Team) error {
	if err := r.db.Model(project).Association("Teams").Replace(teams); err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update project teams", err)
	}
	return nil
}

func (r *projectRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Project{}, id).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete project", err)
	}
	return nil
}
