package taskflow

import "github.com/Employeest/employeest-be/pkg/constants"

// Event names the explicit transition actions exposed over the API.
const (
	EventStartProgress = "start_progress"
	EventMarkAsDone    = "mark_as_done"
)

// Transition is one legal status move. FailureReason is the message returned
// when the event is fired from any other state.
type Transition struct {
	From          string
	To            string
	Event         string
	SuccessStatus string
	FailureReason string
}

// AllTransitions registers the explicit transition actions. General field
// updates do not go through this table; they use the diff-and-log path.
func AllTransitions() []Transition {
	return []Transition{
		{
			From:          constants.TaskStatusTodo,
			To:            constants.TaskStatusInProgress,
			Event:         EventStartProgress,
			SuccessStatus: "Task moved to In Progress",
			FailureReason: "Task cannot be moved to In Progress from current state",
		},
		{
			From:          constants.TaskStatusInProgress,
			To:            constants.TaskStatusDone,
			Event:         EventMarkAsDone,
			SuccessStatus: "Task marked as Done",
			FailureReason: "Task cannot be marked as Done from current state",
		},
	}
}
