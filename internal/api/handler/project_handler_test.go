package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Employeest/employeest-be/internal/api/handler"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

func setupProjectRouter(actor auth.Actor) (*gin.Engine, *mockProjectService, *mockStatisticsService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	projectService := new(mockProjectService)
	statisticsService := new(mockStatisticsService)
	h := handler.NewProjectHandler(projectService, statisticsService)

	authed := r.Group("", injectActor(actor))
	authed.GET("/projects/:id", h.GetByID)
	authed.DELETE("/projects/:id", h.Delete)
	authed.GET("/projects/:id/velocity-chart", h.VelocityChart)
	authed.GET("/projects/:id/task-status-chart", h.TaskStatusChart)

	return r, projectService, statisticsService
}

func TestProjectHandler_VelocityChart(t *testing.T) {
	actor := auth.Actor{ID: 7, Role: constants.UserRoleOwner}
	router, _, statisticsService := setupProjectRouter(actor)

	statisticsService.On("ProjectVelocityChart", mock.Anything, actor, int64(5)).
		Return(&dto.ChartURLResponse{ChartURL: "https://quickchart.io/chart/render/abc"}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/projects/5/velocity-chart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var envelope responses.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "https://quickchart.io/chart/render/abc", data["chart_url"])

	statisticsService.AssertExpectations(t)
}

func TestProjectHandler_TaskStatusChart_Forbidden(t *testing.T) {
	actor := auth.Actor{ID: 9, Role: constants.UserRoleEmployee}
	router, _, statisticsService := setupProjectRouter(actor)

	statisticsService.On("ProjectTaskStatusChart", mock.Anything, actor, int64(5)).
		Return(nil, responses.ErrForbidden)

	req, _ := http.NewRequest(http.MethodGet, "/projects/5/task-status-chart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestProjectHandler_GetByID_NotFound(t *testing.T) {
	actor := auth.Actor{ID: 9, Role: constants.UserRoleEmployee}
	router, projectService, _ := setupProjectRouter(actor)

	projectService.On("GetByID", int64(404)).Return(nil, responses.ErrRecordNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/projects/404", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestProjectHandler_Delete(t *testing.T) {
	actor := auth.Actor{ID: 7, Role: constants.UserRoleOwner}
	router, projectService, _ := setupProjectRouter(actor)

	projectService.On("Delete", actor, int64(5)).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/projects/5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	projectService.AssertExpectations(t)
}
