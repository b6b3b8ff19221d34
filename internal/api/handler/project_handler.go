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

type ProjectHandler struct {
	projectService    service.ProjectService
	statisticsService service.StatisticsService
}

func NewProjectHandler(projectService service.ProjectService, statisticsService service.StatisticsService) *ProjectHandler {
	return &ProjectHandler{
		projectService:    projectService,
		statisticsService: statisticsService,
	}
}

// Create creates a project owned by the caller.
// @Summary Create a project
// @Tags Project
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateProjectRequest true "project payload"
// @Success 201 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(middleware.GetActor(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, project)
}

// GetByID returns a project with its owner, managers and tasks.
// @Summary Get a project by id
// @Tags Project
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "project ID"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid project ID", err.Error())
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// List returns a paginated project listing.
// @Summary List projects
// @Tags Project
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "filter by project status"
// @Param search query string false "keyword search over name and description"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} responses.Response{data=[]dto.ProjectResponse}
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	projects, total, err := h.projectService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, projects, total, query.GetPage(), query.GetPageSize())
}

// Update modifies a project. Owner or staff only.
// @Summary Update a project
// @Tags Project
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "project ID"
// @Param request body dto.UpdateProjectRequest true "fields to update"
// @Success 200 {object} responses.Response{data=dto.ProjectResponse}
// @Router /api/v1/projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid project ID", err.Error())
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(middleware.GetActor(c), id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, project)
}

// Delete removes a project. Owner or staff only.
// @Summary Delete a project
// @Tags Project
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "project ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid project ID", err.Error())
		return
	}

	if err := h.projectService.Delete(middleware.GetActor(c), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// VelocityChart renders the project's weekly story-point velocity chart.
// @Summary Get a velocity chart URL for a project
// @Tags Project
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "project ID"
// @Success 200 {object} responses.Response{data=dto.ChartURLResponse}
// @Router /api/v1/projects/{id}/velocity-chart [get]
func (h *ProjectHandler) VelocityChart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid project ID", err.Error())
		return
	}

	resp, err := h.statisticsService.ProjectVelocityChart(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// TaskStatusChart renders the project's task status distribution chart.
// @Summary Get a task status distribution chart URL for a project
// @Tags Project
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "project ID"
// @Success 200 {object} responses.Response{data=dto.ChartURLResponse}
// @Router /api/v1/projects/{id}/task-status-chart [get]
func (h *ProjectHandler) TaskStatusChart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid project ID", err.Error())
		return
	}

	resp, err := h.statisticsService.ProjectTaskStatusChart(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
