package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Employeest/employeest-be/internal/api/middleware"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/responses"
	"github.com/Employeest/employeest-be/pkg/utils"
)

type TaskCommentHandler struct {
	commentService service.TaskCommentService
}

func NewTaskCommentHandler(commentService service.TaskCommentService) *TaskCommentHandler {
	return &TaskCommentHandler{
		commentService: commentService,
	}
}

// Create adds a comment to a task, authored by the caller.
// @Summary Comment on a task
// @Tags TaskComment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Param request body dto.CreateCommentRequest true "comment payload"
// @Success 201 {object} responses.Response{data=dto.CommentResponse}
// @Router /api/v1/tasks/{id}/comments [post]
func (h *TaskCommentHandler) Create(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	comment, err := h.commentService.Create(middleware.GetActor(c), taskID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, comment)
}

// ListByTask returns a task's comments, oldest first.
// @Summary List comments on a task
// @Tags TaskComment
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Success 200 {object} responses.Response{data=[]dto.CommentResponse}
// @Router /api/v1/tasks/{id}/comments [get]
func (h *TaskCommentHandler) ListByTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	comments, err := h.commentService.ListByTask(taskID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, comments)
}

// Update edits a comment. Author or staff only.
// @Summary Update a comment
// @Tags TaskComment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Param comment_id path int64 true "comment ID"
// @Param request body dto.UpdateCommentRequest true "comment payload"
// @Success 200 {object} responses.Response{data=dto.CommentResponse}
// @Router /api/v1/tasks/{id}/comments/{comment_id} [patch]
func (h *TaskCommentHandler) Update(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid comment ID", err.Error())
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	comment, err := h.commentService.Update(middleware.GetActor(c), taskID, commentID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, comment)
}

// Delete removes a comment. Author or staff only.
// @Summary Delete a comment
// @Tags TaskComment
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Param comment_id path int64 true "comment ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/tasks/{id}/comments/{comment_id} [delete]
func (h *TaskCommentHandler) Delete(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid comment ID", err.Error())
		return
	}

	if err := h.commentService.Delete(middleware.GetActor(c), taskID, commentID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
