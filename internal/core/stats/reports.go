// Package stats turns task records into the time-bucketed series behind the
// dashboard charts. All functions are pure: filtering (project, status, time
// window) is the repository's job, bucketing and summing happen here, so
// re-running a report over unchanged rows always yields the same series.
package stats

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/Employeest/employeest-be/internal/model"
)

// Point is one labeled value of a report series.
type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// StatusDistribution counts tasks per status value. Categories are emitted in
// ascending lexical status order, matching the grouping step's natural order.
func StatusDistribution(tasks []*model.Task) []Point {
	counts := lo.CountValuesBy(tasks, func(t *model.Task) string { return t.Status })
	return toSeries(counts)
}

// WeeklyStoryPoints sums story points per week bucket of the tasks' update
// timestamps. Tasks without story points contribute nothing.
func WeeklyStoryPoints(tasks []*model.Task) []Point {
	sums := make(map[string]int)
	for _, t := range tasks {
		if t.StoryPoints == nil {
			continue
		}
		sums[WeekLabel(WeekStart(t.UpdatedAt))] += *t.StoryPoints
	}
	return toSeries(sums)
}

// MonthlyStoryPoints sums story points per calendar month of the tasks'
// update timestamps.
func MonthlyStoryPoints(tasks []*model.Task) []Point {
	sums := make(map[string]int)
	for _, t := range tasks {
		if t.StoryPoints == nil {
			continue
		}
		sums[MonthLabel(t.UpdatedAt)] += *t.StoryPoints
	}
	return toSeries(sums)
}

// MonthlyCompletions counts tasks per calendar month of their update
// timestamps.
func MonthlyCompletions(tasks []*model.Task) []Point {
	counts := lo.CountValuesBy(tasks, func(t *model.Task) string { return MonthLabel(t.UpdatedAt) })
	return toSeries(counts)
}

// Since returns the cutoff timestamp for a trailing window of days.
func Since(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// toSeries flattens a bucket map into points ordered by label. Both label
// formats ("YYYY-MM", "YYYY-Wnn") sort chronologically as strings.
func toSeries(buckets map[string]int) []Point {
	labels := lo.Keys(buckets)
	sort.Strings(labels)

	points := make([]Point, len(labels))
	for i, label := range labels {
		points[i] = Point{Label: label, Value: buckets[label]}
	}
	return points
}
