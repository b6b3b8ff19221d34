package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Employeest/employeest-be/internal/api/middleware"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
	}
}

// BusinessStoryPoints renders the company-wide monthly story-point chart.
// @Summary Get the monthly completed story points chart URL
// @Tags Statistics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response{data=dto.ChartURLResponse}
// @Router /api/v1/statistics/business/story-points-monthly [get]
func (h *StatisticsHandler) BusinessStoryPoints(c *gin.Context) {
	resp, err := h.statisticsService.BusinessStoryPointsChart(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// PersonalCompletions renders the caller's monthly task completion chart.
// @Summary Get the caller's monthly task completion chart URL
// @Tags Statistics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response{data=dto.ChartURLResponse}
// @Router /api/v1/me/statistics/task-completion-chart [get]
func (h *StatisticsHandler) PersonalCompletions(c *gin.Context) {
	resp, err := h.statisticsService.PersonalCompletionChart(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}
