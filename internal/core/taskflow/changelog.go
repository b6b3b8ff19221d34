package taskflow

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/constants"
)

// CreationEntry is the single history row appended when a task is created.
func CreationEntry(task *model.Task, actorID int64) *model.TaskHistory {
	return &model.TaskHistory{
		TaskID:       task.ID,
		ActorID:      actorID,
		FieldChanged: constants.HistoryEventCreated,
		NewValue:     task.Name,
		Description:  fmt.Sprintf("Task %q created", task.Name),
	}
}

// Diff compares two task snapshots and returns one history row per changed
// tracked field. Foreign keys (assignee, project, parent) are compared by id
// so representation differences never produce phantom changes.
func Diff(before, after *model.Task, actorID int64) []*model.TaskHistory {
	var entries []*model.TaskHistory

	record := func(field, oldValue, newValue string) {
		entries = append(entries, &model.TaskHistory{
			TaskID:       after.ID,
			ActorID:      actorID,
			FieldChanged: field,
			OldValue:     oldValue,
			NewValue:     newValue,
			Description:  fmt.Sprintf("%s changed from %q to %q", field, oldValue, newValue),
		})
	}

	if before.Name != after.Name {
		record(constants.HistoryFieldName, before.Name, after.Name)
	}
	if strPtr(before.Description) != strPtr(after.Description) {
		record(constants.HistoryFieldDescription, strPtr(before.Description), strPtr(after.Description))
	}
	if before.Status != after.Status {
		record(constants.HistoryFieldStatus, before.Status, after.Status)
	}
	if before.Priority != after.Priority {
		record(constants.HistoryFieldPriority, before.Priority, after.Priority)
	}
	if !int64PtrEqual(before.AssigneeID, after.AssigneeID) {
		record(constants.HistoryFieldAssignee, int64Ptr(before.AssigneeID), int64Ptr(after.AssigneeID))
	}
	if before.ProjectID != after.ProjectID {
		record(constants.HistoryFieldProject,
			fmt.Sprintf("%d", before.ProjectID), fmt.Sprintf("%d", after.ProjectID))
	}
	if !int64PtrEqual(before.ParentTaskID, after.ParentTaskID) {
		record(constants.HistoryFieldParent, int64Ptr(before.ParentTaskID), int64Ptr(after.ParentTaskID))
	}
	if datePtr(before.Deadline) != datePtr(after.Deadline) {
		record(constants.HistoryFieldDeadline, datePtr(before.Deadline), datePtr(after.Deadline))
	}
	if !intPtrEqual(before.StoryPoints, after.StoryPoints) {
		record(constants.HistoryFieldStoryPoints, intPtr(before.StoryPoints), intPtr(after.StoryPoints))
	}
	if !float64PtrEqual(before.EstimationHours, after.EstimationHours) {
		record(constants.HistoryFieldEstimation, float64Ptr(before.EstimationHours), float64Ptr(after.EstimationHours))
	}

	return entries
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func int64Ptr(p *int64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}

func intPtr(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}

func float64Ptr(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func datePtr(p *datatypes.Date) string {
	if p == nil {
		return ""
	}
	return time.Time(*p).Format("2006-01-02")
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
