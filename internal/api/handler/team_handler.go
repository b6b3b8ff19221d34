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

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// Create creates a team owned by the caller.
// @Summary Create a team
// @Tags Team
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateTeamRequest true "team payload"
// @Success 201 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.Create(middleware.GetActor(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, team)
}

// GetByID returns a team with its owner and member roster.
// @Summary Get a team by id
// @Tags Team
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/teams/{id} [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, team)
}

// List returns a paginated team listing.
// @Summary List teams
// @Tags Team
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} responses.Response{data=[]dto.TeamResponse}
// @Router /api/v1/teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	teams, total, err := h.teamService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, teams, total, query.GetPage(), query.GetPageSize())
}

// Update modifies a team. Owner or staff only.
// @Summary Update a team
// @Tags Team
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Param request body dto.UpdateTeamRequest true "fields to update"
// @Success 200 {object} responses.Response{data=dto.TeamResponse}
// @Router /api/v1/teams/{id} [patch]
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	team, err := h.teamService.Update(middleware.GetActor(c), id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, team)
}

// Delete removes a team. Owner or staff only.
// @Summary Delete a team
// @Tags Team
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}

	if err := h.teamService.Delete(middleware.GetActor(c), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
