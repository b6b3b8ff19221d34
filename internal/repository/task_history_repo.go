package repository

import (
	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

// TaskHistoryRepository is append-only. History rows are never updated or
// deleted once written.
type TaskHistoryRepository interface {
	Create(entry *model.TaskHistory) error
	ListByTask(taskID int64) ([]*model.TaskHistory, error)
}

type taskHistoryRepository struct {
	db *gorm.DB
}

func NewTaskHistoryRepository(db *gorm.DB) TaskHistoryRepository {
	return &taskHistoryRepository{db: db}
}

func (r *taskHistoryRepository) Create(entry *model.TaskHistory) error {
	if err := r.db.Create(entry).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create history entry", err)
	}
	return nil
}

func (r *taskHistoryRepository) ListByTask(taskID int64) ([]*model.TaskHistory, error) {
	var entries []*model.TaskHistory
	err := r.db.Preload("Actor").Where("task_id = ?", taskID).
		Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query task history", err)
	}
	return entries, nil
}
