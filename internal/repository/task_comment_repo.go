package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type TaskCommentRepository interface {
	Create(comment *model.TaskComment) error
	FindByID(id int64, opts ...QueryOption) (*model.TaskComment, error)
	ListByTask(taskID int64) ([]*model.TaskComment, error)
	Update(comment *model.TaskComment) error
	Delete(id int64) error
}

type taskCommentRepository struct {
	db *gorm.DB
}

func NewTaskCommentRepository(db *gorm.DB) TaskCommentRepository {
	return &taskCommentRepository{db: db}
}

func (r *taskCommentRepository) Create(comment *model.TaskComment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create comment", err)
	}
	return nil
}

func (r *taskCommentRepository) FindByID(id int64, opts ...QueryOption) (*model.TaskComment, error) {
	var comment model.TaskComment
	err := applyOptions(r.db, opts).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query comment", err)
	}
	return &comment, nil
}

func (r *taskCommentRepository) ListByTask(taskID int64) ([]*model.TaskComment, error) {
	var comments []*model.TaskComment
	err := r.db.Preload("Author").Where("task_id = ?", taskID).
		Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query comments", err)
	}
	return comments, nil
}

func (r *taskCommentRepository) Update(comment *model.TaskComment) error {
	if err := r.db.Save(comment).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update comment", err)
	}
	return nil
}

func (r *taskCommentRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.TaskComment{}, id).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete comment", err)
	}
	return nil
}
