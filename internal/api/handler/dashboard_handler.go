package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Employeest/employeest-be/internal/api/middleware"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Owner returns portfolio-wide stats for project owners and staff.
// @Summary Get the owner dashboard
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response{data=dto.OwnerDashboardResponse}
// @Router /api/v1/dashboards/owner [get]
func (h *DashboardHandler) Owner(c *gin.Context) {
	resp, err := h.dashboardService.OwnerDashboard(middleware.GetActor(c))
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Employee returns the caller's projects, teams and open tasks.
// @Summary Get the employee dashboard
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response{data=dto.EmployeeDashboardResponse}
// @Router /api/v1/dashboards/employee [get]
func (h *DashboardHandler) Employee(c *gin.Context) {
	resp, err := h.dashboardService.EmployeeDashboard(middleware.GetActor(c))
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
