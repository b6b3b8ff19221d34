package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Employeest/employeest-be/internal/adapter/chart"
	"github.com/Employeest/employeest-be/internal/core/stats"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/responses"
)

const (
	velocityWindowDays = 90
	yearWindowDays     = 365
)

// StatisticsService produces chart URLs for the four aggregation reports.
// Empty data is decided before the renderer is ever called, so a 404 here is
// always "no data" and a 500 always a rendering failure.
type StatisticsService interface {
	ProjectVelocityChart(ctx context.Context, actor auth.Actor, projectID int64) (*dto.ChartURLResponse, error)
	ProjectTaskStatusChart(ctx context.Context, actor auth.Actor, projectID int64) (*dto.ChartURLResponse, error)
	BusinessStoryPointsChart(ctx context.Context) (*dto.ChartURLResponse, error)
	PersonalCompletionChart(ctx context.Context, actor auth.Actor) (*dto.ChartURLResponse, error)
}

type statisticsService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	renderer    chart.Renderer
	logger      *zap.Logger
}

func NewStatisticsService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository,
	renderer chart.Renderer, logger *zap.Logger) StatisticsService {
	return &statisticsService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (s *statisticsService) ProjectVelocityChart(ctx context.Context, actor auth.Actor, projectID int64) (*dto.ChartURLResponse, error) {
	project, err := s.ownedProject(actor, projectID)
	if err != nil {
		return nil, err
	}

	since := stats.Since(time.Now(), velocityWindowDays)
	tasks, err := s.taskRepo.ListDoneWithPointsByProject(projectID, since)
	if err != nil {
		return nil, err
	}

	series := stats.WeeklyStoryPoints(tasks)
	if len(series) == 0 {
		return nil, responses.New(responses.CodeNotFound,
			"Not enough data to calculate project velocity.")
	}

	labels, data := splitSeries(series)
	config := chart.LineConfig(
		fmt.Sprintf("Velocity for Project: %s", project.Name),
		"Project Velocity (Story Points per Week)",
		labels, data)

	return s.render(ctx, config)
}

func (s *statisticsService) ProjectTaskStatusChart(ctx context.Context, actor auth.Actor, projectID int64) (*dto.ChartURLResponse, error) {
	project, err := s.ownedProject(actor, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}

	series := stats.StatusDistribution(tasks)
	if len(series) == 0 {
		return nil, responses.New(responses.CodeNotFound,
			"No tasks found for this project to generate a chart.")
	}

	labels, data := splitSeries(series)
	config := chart.PieConfig(
		fmt.Sprintf("Task Status Distribution for %s", project.Name),
		labels, data)

	return s.render(ctx, config)
}

func (s *statisticsService) BusinessStoryPointsChart(ctx context.Context) (*dto.ChartURLResponse, error) {
	since := stats.Since(time.Now(), yearWindowDays)
	tasks, err := s.taskRepo.ListDoneWithPoints(since)
	if err != nil {
		return nil, err
	}

	series := stats.MonthlyStoryPoints(tasks)
	if len(series) == 0 {
		return nil, responses.New(responses.CodeNotFound,
			"No completed tasks with story points found for the last year.")
	}

	labels, data := splitSeries(series)
	config := chart.BarConfig(
		"Monthly Completed Story Points (Last Year)",
		"Completed Story Points",
		labels, data)

	return s.render(ctx, config)
}

func (s *statisticsService) PersonalCompletionChart(ctx context.Context, actor auth.Actor) (*dto.ChartURLResponse, error) {
	since := stats.Since(time.Now(), yearWindowDays)
	tasks, err := s.taskRepo.ListDoneByAssignee(actor.ID, since)
	if err != nil {
		return nil, err
	}

	series := stats.MonthlyCompletions(tasks)
	if len(series) == 0 {
		return nil, responses.New(responses.CodeNotFound,
			"You have no completed tasks in the last year.")
	}

	labels, data := splitSeries(series)
	config := chart.LineConfig(
		"My Monthly Task Completions (Last Year)",
		"My Completed Tasks",
		labels, data)

	return s.render(ctx, config)
}

// ownedProject gates the project chart sub-actions to the project owner.
func (s *statisticsService) ownedProject(actor auth.Actor, projectID int64) (*projectRef, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != actor.ID {
		return nil, responses.ErrForbidden
	}
	return &projectRef{ID: project.ID, Name: project.Name}, nil
}

type projectRef struct {
	ID   int64
	Name string
}

func (s *statisticsService) render(ctx context.Context, config chart.Config) (*dto.ChartURLResponse, error) {
	url, err := s.renderer.Render(ctx, config)
	if err != nil {
		s.logger.Error("chart rendering failed", zap.Error(err))
		return nil, responses.ErrChartRendering
	}
	return &dto.ChartURLResponse{ChartURL: url}, nil
}

func splitSeries(series []stats.Point) ([]string, []int) {
	labels := make([]string, len(series))
	data := make([]int, len(series))
	for i, point := range series {
		labels[i] = point.Label
		data[i] = point.Value
	}
	return labels, data
}
