package taskflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Employeest/employeest-be/internal/core/taskflow"
	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/constants"
)

func TestCreationEntry(t *testing.T) {
	task := &model.Task{Name: "Write report"}
	task.ID = 3

	entry := taskflow.CreationEntry(task, 7)

	assert.Equal(t, int64(3), entry.TaskID)
	assert.Equal(t, int64(7), entry.ActorID)
	assert.Equal(t, constants.HistoryEventCreated, entry.FieldChanged)
	assert.Equal(t, "Write report", entry.NewValue)
}

func TestDiff_NoChanges(t *testing.T) {
	assignee := int64(4)
	before := &model.Task{Name: "a", Status: "TODO", Priority: "medium", AssigneeID: &assignee}
	after := &model.Task{Name: "a", Status: "TODO", Priority: "medium", AssigneeID: &assignee}

	assert.Empty(t, taskflow.Diff(before, after, 1))
}

func TestDiff_TrackedFields(t *testing.T) {
	points := 5
	before := &model.Task{Name: "a", Status: "TODO", Priority: "medium"}
	after := &model.Task{Name: "b", Status: "TODO", Priority: "high", StoryPoints: &points}
	after.ID = 11

	entries := taskflow.Diff(before, after, 2)

	assert.Len(t, entries, 3)
	fields := make([]string, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, e.FieldChanged)
		assert.Equal(t, int64(11), e.TaskID)
		assert.Equal(t, int64(2), e.ActorID)
	}
	assert.ElementsMatch(t, []string{
		constants.HistoryFieldName,
		constants.HistoryFieldPriority,
		constants.HistoryFieldStoryPoints,
	}, fields)
}

func TestDiff_ForeignKeysByIdentity(t *testing.T) {
	oldAssignee, newAssignee := int64(4), int64(5)

	// same id but different loaded relation values must not log a change
	before := &model.Task{AssigneeID: &oldAssignee, Assignee: &model.User{Username: "old-cached"}}
	same := &model.Task{AssigneeID: &oldAssignee, Assignee: &model.User{Username: "fresh"}}
	assert.Empty(t, taskflow.Diff(before, same, 1))

	after := &model.Task{AssigneeID: &newAssignee}
	entries := taskflow.Diff(before, after, 1)
	assert.Len(t, entries, 1)
	assert.Equal(t, constants.HistoryFieldAssignee, entries[0].FieldChanged)
	assert.Equal(t, "4", entries[0].OldValue)
	assert.Equal(t, "5", entries[0].NewValue)
}

func TestDiff_AssigneeCleared(t *testing.T) {
	assignee := int64(4)
	before := &model.Task{AssigneeID: &assignee}
	after := &model.Task{}

	entries := taskflow.Diff(before, after, 1)

	assert.Len(t, entries, 1)
	assert.Equal(t, "4", entries[0].OldValue)
	assert.Equal(t, "", entries[0].NewValue)
}
