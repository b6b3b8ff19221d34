package service

import (
	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type TaskCommentService interface {
	Create(actor auth.Actor, taskID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByTask(taskID int64) ([]*dto.CommentResponse, error)
	Update(actor auth.Actor, taskID, commentID int64, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(actor auth.Actor, taskID, commentID int64) error
}

type taskCommentService struct {
	commentRepo repository.TaskCommentRepository
	taskRepo    repository.TaskRepository
	logger      *zap.Logger
}

func NewTaskCommentService(commentRepo repository.TaskCommentRepository,
	taskRepo repository.TaskRepository, logger *zap.Logger) TaskCommentService {
	return &taskCommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		logger:      logger,
	}
}

func (s *taskCommentService) Create(actor auth.Actor, taskID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		return nil, err
	}

	comment := &model.TaskComment{
		TaskID:   taskID,
		AuthorID: actor.ID,
		Body:     req.Body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.get(comment.ID)
}

func (s *taskCommentService) ListByTask(taskID int64) ([]*dto.CommentResponse, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByTask(taskID)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.CommentResponse, len(comments))
	for i, comment := range comments {
		results[i] = dto.NewCommentResponse(comment)
	}
	return results, nil
}

func (s *taskCommentService) Update(actor auth.Actor, taskID, commentID int64, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.loadForTask(taskID, commentID)
	if err != nil {
		return nil, err
	}

	if !auth.Allow(actor, auth.ActionWrite, auth.KindTaskComment, comment) {
		return nil, responses.ErrForbidden
	}

	comment.Body = req.Body
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return s.get(comment.ID)
}

func (s *taskCommentService) Delete(actor auth.Actor, taskID, commentID int64) error {
	comment, err := s.loadForTask(taskID, commentID)
	if err != nil {
		return err
	}

	if !auth.Allow(actor, auth.ActionDelete, auth.KindTaskComment, comment) {
		return responses.ErrForbidden
	}

	return s.commentRepo.Delete(commentID)
}

// loadForTask treats a comment under the wrong task id as absent.
func (s *taskCommentService) loadForTask(taskID, commentID int64) (*model.TaskComment, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.TaskID != taskID {
		return nil, responses.ErrRecordNotFound
	}
	return comment, nil
}

func (s *taskCommentService) get(id int64) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(id, repository.WithPreload("Author"))
	if err != nil {
		return nil, err
	}
	return dto.NewCommentResponse(comment), nil
}
