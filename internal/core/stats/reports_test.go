package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Employeest/employeest-be/internal/core/stats"
	"github.com/Employeest/employeest-be/internal/model"
)

func task(status string, points *int, updated time.Time) *model.Task {
	t := &model.Task{Status: status, StoryPoints: points}
	t.UpdatedAt = updated
	return t
}

func intp(v int) *int { return &v }

func TestStatusDistribution(t *testing.T) {
	now := time.Now()
	tasks := []*model.Task{
		task("TODO", nil, now),
		task("IN_PROGRESS", nil, now),
		task("DONE", nil, now),
		task("DONE", nil, now),
	}

	points := stats.StatusDistribution(tasks)

	// lexical category order: DONE < IN_PROGRESS < TODO
	assert.Equal(t, []stats.Point{
		{Label: "DONE", Value: 2},
		{Label: "IN_PROGRESS", Value: 1},
		{Label: "TODO", Value: 1},
	}, points)
}

func TestStatusDistribution_Empty(t *testing.T) {
	assert.Empty(t, stats.StatusDistribution(nil))
}

func TestWeeklyStoryPoints(t *testing.T) {
	// Wednesday and Friday of the same week, then the following Monday
	wed := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	fri := time.Date(2025, 6, 6, 18, 0, 0, 0, time.UTC)
	nextMon := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

	tasks := []*model.Task{
		task("DONE", intp(8), wed),
		task("DONE", intp(2), fri),
		task("DONE", intp(1), nextMon),
	}

	points := stats.WeeklyStoryPoints(tasks)

	assert.Equal(t, []stats.Point{
		{Label: "2025-W23", Value: 10},
		{Label: "2025-W24", Value: 1},
	}, points)

	total := 0
	for _, p := range points {
		total += p.Value
	}
	assert.Equal(t, 11, total)
}

func TestWeeklyStoryPoints_SkipsNilPoints(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	tasks := []*model.Task{
		task("DONE", intp(3), now),
		task("DONE", nil, now),
	}

	points := stats.WeeklyStoryPoints(tasks)

	assert.Len(t, points, 1)
	assert.Equal(t, 3, points[0].Value)
}

func TestMonthlyStoryPoints(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	tasks := []*model.Task{
		task("DONE", intp(5), jan),
		task("DONE", intp(3), jan),
		task("DONE", intp(2), feb),
	}

	points := stats.MonthlyStoryPoints(tasks)

	assert.Equal(t, []stats.Point{
		{Label: "2025-01", Value: 8},
		{Label: "2025-02", Value: 2},
	}, points)
}

func TestMonthlyCompletions(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	tasks := []*model.Task{
		task("DONE", nil, jan),
		task("DONE", nil, jan),
		task("DONE", nil, mar),
	}

	points := stats.MonthlyCompletions(tasks)

	assert.Equal(t, []stats.Point{
		{Label: "2025-01", Value: 2},
		{Label: "2025-03", Value: 1},
	}, points)
}

func TestReportsAreIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	tasks := []*model.Task{
		task("DONE", intp(8), now),
		task("DONE", intp(2), now.AddDate(0, 0, 7)),
		task("TODO", nil, now),
	}

	assert.Equal(t, stats.WeeklyStoryPoints(tasks), stats.WeeklyStoryPoints(tasks))
	assert.Equal(t, stats.MonthlyStoryPoints(tasks), stats.MonthlyStoryPoints(tasks))
	assert.Equal(t, stats.StatusDistribution(tasks), stats.StatusDistribution(tasks))
}

func TestWeekStart(t *testing.T) {
	// Sunday belongs to the week starting the previous Monday
	sun := time.Date(2025, 6, 8, 23, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, stats.WeekStart(sun))

	// Monday is its own week start
	assert.Equal(t, mon, stats.WeekStart(mon.Add(5*time.Hour)))
}

func TestWeekLabel_YearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday in ISO week 1 of 2025
	start := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-W01", stats.WeekLabel(start))
}
