package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type WorkLogRepository interface {
	Create(workLog *model.WorkLog) error
	FindByID(id int64, opts ...QueryOption) (*model.WorkLog, error)
	ListAll(offset, limit int) ([]*model.WorkLog, int64, error)
	ListByUser(userID int64, offset, limit int) ([]*model.WorkLog, int64, error)
	Update(workLog *model.WorkLog) error
	Delete(id int64) error
}

type workLogRepository struct {
	db *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Create(workLog *model.WorkLog) error {
	if err := r.db.Create(workLog).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to create work log", err)
	}
	return nil
}

func (r *workLogRepository) FindByID(id int64, opts ...QueryOption) (*model.WorkLog, error) {
	var workLog model.WorkLog
	err := applyOptions(r.db, opts).First(&workLog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, responses.ErrRecordNotFound
		}
		return nil, responses.Wrap(responses.CodeInternalError, "failed to query work log", err)
	}
	return &workLog, nil
}

func (r *workLogRepository) ListAll(offset, limit int) ([]*model.WorkLog, int64, error) {
	return r.list(r.db.Model(&model.WorkLog{}), offset, limit)
}

func (r *workLogRepository) ListByUser(userID int64, offset, limit int) ([]*model.WorkLog, int64, error) {
	return r.list(r.db.Model(&model.WorkLog{}).Where("user_id = ?", userID), offset, limit)
}

func (r *workLogRepository) list(query *gorm.DB, offset, limit int) ([]*model.WorkLog, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to count work logs", err)
	}

	var workLogs []*model.WorkLog
	err := query.Preload("User").
		Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&workLogs).Error
	if err != nil {
		return nil, 0, responses.Wrap(responses.CodeInternalError, "failed to query work logs", err)
	}
	return workLogs, total, nil
}

func (r *workLogRepository) Update(workLog *model.WorkLog) error {
	if err := r.db.Save(workLog).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to update work log", err)
	}
	return nil
}

func (r *workLogRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.WorkLog{}, id).Error; err != nil {
		return responses.Wrap(responses.CodeInternalError, "failed to delete work log", err)
	}
	return nil
}
