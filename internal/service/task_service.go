package service

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Employeest/employeest-be/internal/core/taskflow"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type TaskService interface {
	Create(actor auth.Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetByID(id int64) (*dto.TaskResponse, error)
	List(query *dto.TaskListQuery) ([]*dto.TaskResponse, int64, error)
	Update(actor auth.Actor, id int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(actor auth.Actor, id int64) error

	StartProgress(actor auth.Actor, id int64) (*dto.TransitionResponse, error)
	MarkAsDone(actor auth.Actor, id int64) (*dto.TransitionResponse, error)
	History(id int64) ([]*dto.TaskHistoryResponse, error)
}

type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	historyRepo repository.TaskHistoryRepository
	flow        *taskflow.StateMachine
	logger      *zap.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository, historyRepo repository.TaskHistoryRepository,
	flow *taskflow.StateMachine, logger *zap.Logger) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		flow:        flow,
		logger:      logger,
	}
}

func (s *taskService) Create(actor auth.Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return nil, responses.New(responses.CodeBadRequest, "Project does not exist.")
	}
	if req.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(*req.AssigneeID); err != nil {
			return nil, responses.New(responses.CodeBadRequest, "Assignee (User) does not exist.")
		}
	}
	if req.ParentTaskID != nil {
		if _, err := s.taskRepo.FindByID(*req.ParentTaskID); err != nil {
			return nil, responses.New(responses.CodeBadRequest, "Parent task does not exist.")
		}
	}

	task := &model.Task{
		ProjectID:       req.ProjectID,
		ParentTaskID:    req.ParentTaskID,
		Name:            req.Name,
		AssigneeID:      req.AssigneeID,
		StoryPoints:     req.StoryPoints,
		EstimationHours: req.EstimationHours,
	}
	if req.Description != "" {
		task.Description = &req.Description
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Deadline != nil {
		deadline, err := parseDate(*req.Deadline)
		if err != nil {
			return nil, responses.New(responses.CodeBadRequest, "deadline must be YYYY-MM-DD")
		}
		task.Deadline = deadline
	}

	entry := taskflow.CreationEntry(task, actor.ID)
	if err := s.taskRepo.CreateWithHistory(task, entry); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		zap.Int64("task_id", task.ID),
		zap.Int64("project_id", task.ProjectID),
		zap.Int64("actor_id", actor.ID))

	return s.GetByID(task.ID)
}

func (s *taskService) GetByID(id int64) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(id,
		repository.WithPreload("Project"),
		repository.WithPreload("Assignee"))
	if err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(task), nil
}

func (s *taskService) List(query *dto.TaskListQuery) ([]*dto.TaskResponse, int64, error) {
	filter := repository.TaskFilter{
		ProjectID:      query.ProjectID,
		Status:         query.Status,
		AssigneeID:     query.AssigneeID,
		AssigneeIsNull: query.AssigneeIsNull,
		NameContains:   query.NameContains,
		ProjectName:    query.ProjectName,
		Search:         query.Search,
		Ordering:       query.Ordering,
	}
	if query.StatusIn != "" {
		statuses := strings.Split(query.StatusIn, ",")
		if !lo.Every(constants.TaskStatuses, statuses) {
			return nil, 0, responses.New(responses.CodeBadRequest, "status__in contains an unknown status")
		}
		filter.StatusIn = statuses
	}
	if query.DeadlineAfter != "" {
		after, err := time.Parse("2006-01-02", query.DeadlineAfter)
		if err != nil {
			return nil, 0, responses.New(responses.CodeBadRequest, "deadline_after must be YYYY-MM-DD")
		}
		filter.DeadlineAfter = &after
	}
	if query.DeadlineBefore != "" {
		before, err := time.Parse("2006-01-02", query.DeadlineBefore)
		if err != nil {
			return nil, 0, responses.New(responses.CodeBadRequest, "deadline_before must be YYYY-MM-DD")
		}
		filter.DeadlineBefore = &before
	}

	tasks, total, err := s.taskRepo.List(filter, query.GetOffset(), query.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	results := make([]*dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		results[i] = dto.NewTaskResponse(task)
	}
	return results, total, nil
}

func (s *taskService) Update(actor auth.Actor, id int64, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.loadForWrite(id)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindTask, task) {
		return nil, responses.ErrForbidden
	}

	if req.ParentTaskID != nil && *req.ParentTaskID == task.ID {
		return nil, responses.New(responses.CodeBadRequest, "Task cannot be its own parent.")
	}

	before := *task

	if req.ProjectID != nil && *req.ProjectID != task.ProjectID {
		if _, err := s.projectRepo.FindByID(*req.ProjectID); err != nil {
			return nil, responses.New(responses.CodeBadRequest, "Project does not exist.")
		}
		task.ProjectID = *req.ProjectID
	}
	if req.ParentTaskID != nil {
		task.ParentTaskID = req.ParentTaskID
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		if *req.AssigneeID > 0 {
			if _, err := s.userRepo.FindByID(*req.AssigneeID); err != nil {
				return nil, responses.New(responses.CodeBadRequest, "Assignee (User) does not exist.")
			}
			task.AssigneeID = req.AssigneeID
		} else {
			task.AssigneeID = nil
		}
	}
	if req.StoryPoints != nil {
		task.StoryPoints = req.StoryPoints
	}
	if req.EstimationHours != nil {
		task.EstimationHours = req.EstimationHours
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			task.Deadline = nil
		} else {
			deadline, err := parseDate(*req.Deadline)
			if err != nil {
				return nil, responses.New(responses.CodeBadRequest, "deadline must be YYYY-MM-DD")
			}
			task.Deadline = deadline
		}
	}

	entries := taskflow.Diff(&before, task, actor.ID)
	if err := s.taskRepo.UpdateWithHistory(task, entries); err != nil {
		return nil, err
	}

	return s.GetByID(task.ID)
}

func (s *taskService) Delete(actor auth.Actor, id int64) error {
	task, err := s.loadForWrite(id)
	if err != nil {
		return err
	}

	if !auth.Allow(actor, auth.ActionDelete, auth.KindTask, task) {
		return responses.ErrForbidden
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("task deleted",
		zap.Int64("task_id", id),
		zap.Int64("actor_id", actor.ID))
	return nil
}

func (s *taskService) StartProgress(actor auth.Actor, id int64) (*dto.TransitionResponse, error) {
	task, err := s.loadForWrite(id)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindTask, task) {
		return nil, responses.ErrForbidden
	}

	message, err := s.flow.StartProgress(actor.ID, task)
	if err != nil {
		return nil, err
	}
	return &dto.TransitionResponse{Status: task.Status, Message: message}, nil
}

func (s *taskService) MarkAsDone(actor auth.Actor, id int64) (*dto.TransitionResponse, error) {
	task, err := s.loadForWrite(id)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindTask, task) {
		return nil, responses.ErrForbidden
	}

	message, err := s.flow.MarkAsDone(actor.ID, task)
	if err != nil {
		return nil, err
	}
	return &dto.TransitionResponse{Status: task.Status, Message: message}, nil
}

func (s *taskService) History(id int64) ([]*dto.TaskHistoryResponse, error) {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListByTask(id)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.TaskHistoryResponse, len(entries))
	for i, entry := range entries {
		results[i] = dto.NewTaskHistoryResponse(entry)
	}
	return results, nil
}

// loadForWrite loads a task with the relations the write policy inspects.
func (s *taskService) loadForWrite(id int64) (*model.Task, error) {
	return s.taskRepo.FindByID(id,
		repository.WithPreload("Project"),
		repository.WithPreload("Project.Managers"),
		repository.WithPreload("Assignee"))
}

func parseDate(value string) (*datatypes.Date, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(parsed)
	return &d, nil
}
