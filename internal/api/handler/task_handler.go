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

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create creates a task inside a project.
// @Summary Create a task
// @Tags Task
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateTaskRequest true "task payload"
// @Success 201 {object} responses.Response{data=dto.TaskResponse}
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	task, err := h.taskService.Create(middleware.GetActor(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, task)
}

// GetByID returns a task with its project and assignee.
// @Summary Get a task by id
// @Tags Task
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Success 200 {object} responses.Response{data=dto.TaskResponse}
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	task, err := h.taskService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, task)
}

// List returns tasks matching the filter set.
// @Summary List tasks
// @Tags Task
// @Produce json
// @Security ApiKeyAuth
// @Param project_id query int64 false "filter by project"
// @Param status query string false "filter by exact status"
// @Param status__in query string false "comma separated status list"
// @Param assignee_id query int64 false "filter by assignee"
// @Param assignee_id__isnull query bool false "filter unassigned tasks"
// @Param name__icontains query string false "case-insensitive name match"
// @Param project_name query string false "case-insensitive project name match"
// @Param deadline_after query string false "deadline lower bound (YYYY-MM-DD)"
// @Param deadline_before query string false "deadline upper bound (YYYY-MM-DD)"
// @Param search query string false "keyword over name, description and project name"
// @Param ordering query string false "sort field, prefix with - for descending"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} responses.Response{data=[]dto.TaskResponse}
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	tasks, total, err := h.taskService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, tasks, total, query.GetPage(), query.GetPageSize())
}

// Update modifies a task and records the change history.
// @Summary Update a task
// @Tags Task
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Param request body dto.UpdateTaskRequest true "fields to update"
// @Success 200 {object} responses.Response{data=dto.TaskResponse}
// @Router /api/v1/tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	task, err := h.taskService.Update(middleware.GetActor(c), id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, task)
}

// Delete removes a task.
// @Summary Delete a task
// @Tags Task
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	if err := h.taskService.Delete(middleware.GetActor(c), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// StartProgress moves a task from TODO to IN_PROGRESS.
// @Summary Start progress on a task
// @Tags Task
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Success 200 {object} responses.Response{data=dto.TransitionResponse}
// @Router /api/v1/tasks/{id}/start-progress [post]
func (h *TaskHandler) StartProgress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	resp, err := h.taskService.StartProgress(middleware.GetActor(c), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// MarkAsDone moves a task from IN_PROGRESS to DONE.
// @Summary Mark a task as done
// @Tags Task
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Success 200 {object} responses.Response{data=dto.TransitionResponse}
// @Router /api/v1/tasks/{id}/mark-as-done [post]
func (h *TaskHandler) MarkAsDone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	resp, err := h.taskService.MarkAsDone(middleware.GetActor(c), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// History returns the task's change log, newest first.
// @Summary Get a task's change history
// @Tags Task
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "task ID"
// @Success 200 {object} responses.Response{data=[]dto.TaskHistoryResponse}
// @Router /api/v1/tasks/{id}/history [get]
func (h *TaskHandler) History(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	entries, err := h.taskService.History(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, entries)
}
