package service

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type WorkLogService interface {
	Create(actor auth.Actor, req *dto.CreateWorkLogRequest) (*dto.WorkLogResponse, error)
	GetByID(actor auth.Actor, id int64) (*dto.WorkLogResponse, error)
	List(actor auth.Actor, query *dto.WorkLogListQuery) ([]*dto.WorkLogResponse, int64, error)
	Update(actor auth.Actor, id int64, req *dto.UpdateWorkLogRequest) (*dto.WorkLogResponse, error)
	Delete(actor auth.Actor, id int64) error
}

type workLogService struct {
	workLogRepo repository.WorkLogRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

func NewWorkLogService(workLogRepo repository.WorkLogRepository, taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository, logger *zap.Logger) WorkLogService {
	return &workLogService{
		workLogRepo: workLogRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (s *workLogService) Create(actor auth.Actor, req *dto.CreateWorkLogRequest) (*dto.WorkLogResponse, error) {
	if err := validateWorkLogTarget(req.TaskID, req.ProjectID); err != nil {
		return nil, err
	}
	if req.TaskID != nil {
		if _, err := s.taskRepo.FindByID(*req.TaskID); err != nil {
			return nil, responses.New(responses.CodeBadRequest, "task does not exist")
		}
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(*req.ProjectID); err != nil {
			return nil, responses.New(responses.CodeBadRequest, "project does not exist")
		}
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, responses.New(responses.CodeBadRequest, "date must be YYYY-MM-DD")
	}

	workLog := &model.WorkLog{
		UserID:      actor.ID,
		TaskID:      req.TaskID,
		ProjectID:   req.ProjectID,
		Date:        datatypes.Date(date),
		HoursSpent:  req.HoursSpent,
		Description: req.Description,
	}
	if err := s.workLogRepo.Create(workLog); err != nil {
		return nil, err
	}
	return s.get(workLog.ID)
}

func (s *workLogService) GetByID(actor auth.Actor, id int64) (*dto.WorkLogResponse, error) {
	workLog, err := s.loadVisible(actor, id)
	if err != nil {
		return nil, err
	}
	return dto.NewWorkLogResponse(workLog), nil
}

// List is scoped to the actor's own rows; staff see everything.
func (s *workLogService) List(actor auth.Actor, query *dto.WorkLogListQuery) ([]*dto.WorkLogResponse, int64, error) {
	var (
		workLogs []*model.WorkLog
		total    int64
		err      error
	)
	if actor.IsStaff {
		workLogs, total, err = s.workLogRepo.ListAll(query.GetOffset(), query.GetPageSize())
	} else {
		workLogs, total, err = s.workLogRepo.ListByUser(actor.ID, query.GetOffset(), query.GetPageSize())
	}
	if err != nil {
		return nil, 0, err
	}

	results := make([]*dto.WorkLogResponse, len(workLogs))
	for i, workLog := range workLogs {
		results[i] = dto.NewWorkLogResponse(workLog)
	}
	return results, total, nil
}

func (s *workLogService) Update(actor auth.Actor, id int64, req *dto.UpdateWorkLogRequest) (*dto.WorkLogResponse, error) {
	workLog, err := s.loadVisible(actor, id)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindWorkLog, workLog) {
		return nil, responses.ErrForbidden
	}

	taskID := workLog.TaskID
	projectID := workLog.ProjectID
	if req.TaskID != nil {
		if *req.TaskID > 0 {
			taskID = req.TaskID
		} else {
			taskID = nil
		}
	}
	if req.ProjectID != nil {
		if *req.ProjectID > 0 {
			projectID = req.ProjectID
		} else {
			projectID = nil
		}
	}
	if err := validateWorkLogTarget(taskID, projectID); err != nil {
		return nil, err
	}

	workLog.TaskID = taskID
	workLog.ProjectID = projectID
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, responses.New(responses.CodeBadRequest, "date must be YYYY-MM-DD")
		}
		workLog.Date = datatypes.Date(date)
	}
	if req.HoursSpent != nil {
		workLog.HoursSpent = *req.HoursSpent
	}
	if req.Description != nil {
		workLog.Description = req.Description
	}

	if err := s.workLogRepo.Update(workLog); err != nil {
		return nil, err
	}
	return s.get(workLog.ID)
}

func (s *workLogService) Delete(actor auth.Actor, id int64) error {
	workLog, err := s.loadVisible(actor, id)
	if err != nil {
		return err
	}

	if !auth.Allow(actor, auth.ActionDelete, auth.KindWorkLog, workLog) {
		return responses.ErrForbidden
	}

	return s.workLogRepo.Delete(id)
}

// loadVisible reports someone else's work log as not found rather than
// forbidden, hiding its existence from non-staff actors.
func (s *workLogService) loadVisible(actor auth.Actor, id int64) (*model.WorkLog, error) {
	workLog, err := s.workLogRepo.FindByID(id, repository.WithPreload("User"))
	if err != nil {
		return nil, err
	}
	if !auth.Allow(actor, auth.ActionRead, auth.KindWorkLog, workLog) {
		return nil, responses.ErrRecordNotFound
	}
	return workLog, nil
}

// validateWorkLogTarget enforces the task/project XOR invariant.
func validateWorkLogTarget(taskID, projectID *int64) error {
	if taskID != nil && projectID != nil {
		return responses.New(responses.CodeBadRequest,
			"Work log cannot be associated with both a task and a project simultaneously.")
	}
	if taskID == nil && projectID == nil {
		return responses.New(responses.CodeBadRequest,
			"Work log must be associated with a task or a project.")
	}
	return nil
}

func (s *workLogService) get(id int64) (*dto.WorkLogResponse, error) {
	workLog, err := s.workLogRepo.FindByID(id, repository.WithPreload("User"))
	if err != nil {
		return nil, err
	}
	return dto.NewWorkLogResponse(workLog), nil
}
