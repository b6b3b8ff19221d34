package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

// TaskFilter narrows the task list query.
type TaskFilter struct {
	ProjectID      *int64
	Status         string
	StatusIn       []string
	AssigneeID     *int64
	AssigneeIsNull *bool
	NameContains   string
	ProjectName    string
	DeadlineAfter  *time.Time
	DeadlineBefore *time.Time
	Search         string // matched against name, description and project name
	Ordering       string // created_at, deadline, status or name, "-" prefix descending
}

type TaskRepository interface {
	CreateWithHistory(task *model.Task, entry *model.TaskHistory) error
	FindByID(id int64, opts ...QueryOption) (*model.Task, error)
	List(filter TaskFilter, offset, limit int) ([]*model.Task, int64, error)
	UpdateWithHistory(task *model.Task, entries []*model.TaskHistory) error
	Delete(id int64) error

	ListByProject(projectID int64) ([]*model.Task, error)
	ListDoneWithPointsByProject(projectID int64, since time.Time) ([]*model.Task, error)
	ListDoneWithPoints(since time.Time) ([]*model.Task, error)
	ListDoneByAssignee(assigneeID int64, since time.Time) ([]*model.Task, error)

	ListOpenByAssignee(assigneeID int64) ([]*model.Task, error)
	DistinctProjectIDsByAssignee(assigneeID int64) ([]int64, error)
	CountByProjectOwner(ownerID int64) (int64, error)
	CountByProjectOwnerAndStatus(ownerID int64, status string) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// CreateWithHistory inserts the task and its creation history row in one
// transaction.
func (r *taskRepository) CreateWithHistory(task *model.Task, entry *model.TaskHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		entry.TaskID = task.ID
		return tx.Create(entry).Error
	})
	if err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create task", err)
	}
	return nil
}

func (r *taskRepository) FindByID(id int64, opts ...QueryOption) (*model.Task, error) {
	var task model.Task
	err := applyOptions(r.db, opts).First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query task", err)
	}
	return &task, nil
}

func (r *taskRepository) List(filter TaskFilter, offset, limit int) ([]*model.Task, int64, error) {
	query := r.db.Model(&model.Task{})

	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", filter.Status)
	}
	if len(filter.StatusIn) > 0 {
		query = query.Where("tasks.status IN ?", filter.StatusIn)
	}
	if filter.AssigneeID != nil {
		query = query.Where("tasks.assignee_id = ?", *filter.AssigneeID)
	}
	if filter.AssigneeIsNull != nil {
		if *filter.AssigneeIsNull {
			query = query.Where("tasks.assignee_id IS NULL")
		} else {
			query = query.Where("tasks.assignee_id IS NOT NULL")
		}
	}
	if filter.NameContains != "" {
		query = query.Where("tasks.name LIKE ?", "%"+filter.NameContains+"%")
	}
	if filter.DeadlineAfter != nil {
		query = query.Where("tasks.deadline >= ?", *filter.DeadlineAfter)
	}
	if filter.DeadlineBefore != nil {
		query = query.Where("tasks.deadline <= ?", *filter.DeadlineBefore)
	}
	if filter.ProjectName != "" || filter.Search != "" {
		query = query.Joins("JOIN projects ON projects.id = tasks.project_id")
	}
	if filter.ProjectName != "" {
		query = query.Where("projects.name LIKE ?", "%"+filter.ProjectName+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"tasks.name LIKE ? OR tasks.description LIKE ? OR projects.name LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to count tasks", err)
	}

	var tasks []*model.Task
	err := query.Preload("Project").Preload("Assignee").
		Order(taskOrdering(filter.Ordering)).
		Offset(offset).Limit(limit).Find(&tasks).Error
	if err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to query tasks", err)
	}
	return tasks, total, nil
}

// taskOrdering maps a client sort token to a whitelisted ORDER BY clause.
func taskOrdering(ordering string) string {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")
	switch field {
	case "created_at", "deadline", "status", "name":
	default:
		return "tasks.created_at DESC"
	}
	if desc {
		return "tasks." + field + " DESC"
	}
	return "tasks." + field + " ASC"
}

// UpdateWithHistory saves the task and appends its change history rows in one
// transaction.
func (r *taskRepository) UpdateWithHistory(task *model.Task, entries []*model.TaskHistory) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			return tx.Create(entries).Error
		}
		return nil
	})
	if err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update task", err)
	}
	return nil
}

func (r *taskRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Task{}, id).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete task", err)
	}
	return nil
}

func (r *taskRepository) ListByProject(projectID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListDoneWithPointsByProject(projectID int64, since time.Time) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.Where(
		"project_id = ? AND status = ? AND story_points IS NOT NULL AND updated_at >= ?",
		projectID, constants.TaskStatusDone, since).
		Order("updated_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListDoneWithPoints(since time.Time) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.Where(
		"status = ? AND story_points IS NOT NULL AND updated_at >= ?",
		constants.TaskStatusDone, since).
		Order("updated_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListDoneByAssignee(assigneeID int64, since time.Time) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.Where(
		"assignee_id = ? AND status = ? AND updated_at >= ?",
		assigneeID, constants.TaskStatusDone, since).
		Order("updated_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListOpenByAssignee(assigneeID int64) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.Preload("Project").Preload("Assignee").
		Where("assignee_id = ? AND status IN ?", assigneeID,
			[]string{constants.TaskStatusTodo, constants.TaskStatusInProgress}).
		Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) DistinctProjectIDsByAssignee(assigneeID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Task{}).Distinct("project_id").
		Where("assignee_id = ?", assigneeID).
		Pluck("project_id", &ids).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query task projects", err)
	}
	return ids, nil
}

func (r *taskRepository) CountByProjectOwner(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.owner_id = ?", ownerID).Count(&count).Error
	if err != nil {
		return 0, responses.Wrap(responses.CodeInternalError, "failed to count tasks", err)
	}
	return count, nil
}

func (r *taskRepository) CountByProjectOwnerAndStatus(ownerID int64, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.owner_id = ? AND tasks.status = ?", ownerID, status).Count(&count).Error
	if err != nil {
		return 0, responses.Wrap(responses.CodeInternalError, "failed to count tasks", err)
	}
	return count, nil
}
