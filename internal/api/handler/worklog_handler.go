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

type WorkLogHandler struct {
	workLogService service.WorkLogService
}

func NewWorkLogHandler(workLogService service.WorkLogService) *WorkLogHandler {
	return &WorkLogHandler{
		workLogService: workLogService,
	}
}

// Create records hours against exactly one task or one project.
// @Summary Create a work log
// @Tags WorkLog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateWorkLogRequest true "work log payload"
// @Success 201 {object} responses.Response{data=dto.WorkLogResponse}
// @Router /api/v1/worklogs [post]
func (h *WorkLogHandler) Create(c *gin.Context) {
	var req dto.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	workLog, err := h.workLogService.Create(middleware.GetActor(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, workLog)
}

// GetByID returns one of the caller's work logs. Staff may read any.
// @Summary Get a work log by id
// @Tags WorkLog
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "work log ID"
// @Success 200 {object} responses.Response{data=dto.WorkLogResponse}
// @Router /api/v1/worklogs/{id} [get]
func (h *WorkLogHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid work log ID", err.Error())
		return
	}

	workLog, err := h.workLogService.GetByID(middleware.GetActor(c), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, workLog)
}

// List returns the caller's work logs. Staff see every user's logs.
// @Summary List work logs
// @Tags WorkLog
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} responses.Response{data=[]dto.WorkLogResponse}
// @Router /api/v1/worklogs [get]
func (h *WorkLogHandler) List(c *gin.Context) {
	var query dto.WorkLogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	workLogs, total, err := h.workLogService.List(middleware.GetActor(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, workLogs, total, query.GetPage(), query.GetPageSize())
}

// Update edits one of the caller's work logs.
// @Summary Update a work log
// @Tags WorkLog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "work log ID"
// @Param request body dto.UpdateWorkLogRequest true "fields to update"
// @Success 200 {object} responses.Response{data=dto.WorkLogResponse}
// @Router /api/v1/worklogs/{id} [patch]
func (h *WorkLogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid work log ID", err.Error())
		return
	}

	var req dto.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	workLog, err := h.workLogService.Update(middleware.GetActor(c), id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, workLog)
}

// Delete removes one of the caller's work logs.
// @Summary Delete a work log
// @Tags WorkLog
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "work log ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/worklogs/{id} [delete]
func (h *WorkLogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid work log ID", err.Error())
		return
	}

	if err := h.workLogService.Delete(middleware.GetActor(c), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
