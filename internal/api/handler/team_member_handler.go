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

type TeamMemberHandler struct {
	memberService service.TeamMemberService
}

func NewTeamMemberHandler(memberService service.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
	}
}

// Add enrolls a user into a team. Team owner only.
// @Summary Add a team member
// @Tags TeamMember
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Param request body dto.AddTeamMemberRequest true "membership payload"
// @Success 201 {object} responses.Response{data=dto.TeamMemberResponse}
// @Router /api/v1/teams/{id}/members [post]
func (h *TeamMemberHandler) Add(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	member, err := h.memberService.Add(middleware.GetActor(c), teamID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, member)
}

// ListByTeam returns a team's membership roster.
// @Summary List team members
// @Tags TeamMember
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Success 200 {object} responses.Response{data=[]dto.TeamMemberResponse}
// @Router /api/v1/teams/{id}/members [get]
func (h *TeamMemberHandler) ListByTeam(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}

	members, err := h.memberService.ListByTeam(teamID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, members)
}

// Update changes a membership's role. Team owner or the member themselves.
// @Summary Update a team membership
// @Tags TeamMember
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Param member_id path int64 true "membership ID"
// @Param request body dto.UpdateTeamMemberRequest true "fields to update"
// @Success 200 {object} responses.Response{data=dto.TeamMemberResponse}
// @Router /api/v1/teams/{id}/members/{member_id} [patch]
func (h *TeamMemberHandler) Update(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}
	memberID, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid membership ID", err.Error())
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	member, err := h.memberService.Update(middleware.GetActor(c), teamID, memberID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, member)
}

// Remove drops a user from a team. Team owner only.
// @Summary Remove a team member
// @Tags TeamMember
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "team ID"
// @Param member_id path int64 true "membership ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/teams/{id}/members/{member_id} [delete]
func (h *TeamMemberHandler) Remove(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid team ID", err.Error())
		return
	}
	memberID, err := strconv.ParseInt(c.Param("member_id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid membership ID", err.Error())
		return
	}

	if err := h.memberService.Remove(middleware.GetActor(c), teamID, memberID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}
