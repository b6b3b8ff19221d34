package taskflow

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Employeest/employeest-be/internal/model"
	"github.com/Employeest/employeest-be/pkg/constants"
	pkgErrors "github.com/Employeest/employeest-be/pkg/responses"
)

// StateMachine applies the explicit task status transitions and records every
// successful move as a history row. Nothing is mutated on an illegal event.
type StateMachine struct {
	db     *gorm.DB
	logger *zap.Logger

	// transitions[event] is the single legal move for that event
	transitions map[string]Transition
}

func NewStateMachine(db *gorm.DB, logger *zap.Logger) *StateMachine {
	sm := &StateMachine{
		db:          db,
		logger:      logger,
		transitions: make(map[string]Transition),
	}
	for _, t := range AllTransitions() {
		sm.transitions[t.Event] = t
	}
	return sm
}

// StartProgress moves a TODO task to IN_PROGRESS.
func (sm *StateMachine) StartProgress(actorID int64, task *model.Task) (string, error) {
	return sm.fire(EventStartProgress, actorID, task)
}

// MarkAsDone moves an IN_PROGRESS task to DONE and refreshes its update
// timestamp.
func (sm *StateMachine) MarkAsDone(actorID int64, task *model.Task) (string, error) {
	return sm.fire(EventMarkAsDone, actorID, task)
}

// fire runs the event's transition inside a transaction. The status update
// carries a WHERE status = <from> guard so a concurrent move fails cleanly
// instead of being overwritten.
func (sm *StateMachine) fire(event string, actorID int64, task *model.Task) (string, error) {
	t, ok := sm.transitions[event]
	if !ok {
		return "", pkgErrors.New(pkgErrors.CodeBadRequest, fmt.Sprintf("unknown transition event: %s", event))
	}

	if task.Status != t.From {
		return "", pkgErrors.New(pkgErrors.CodeBadRequest, t.FailureReason)
	}

	from := task.Status
	err := sm.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Task{}).
			Where("id = ? AND status = ?", task.ID, from).
			Updates(map[string]interface{}{
				"status":     t.To,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to update task status", result.Error)
		}
		if result.RowsAffected == 0 {
			return pkgErrors.New(pkgErrors.CodeBadRequest, t.FailureReason)
		}

		history := &model.TaskHistory{
			TaskID:       task.ID,
			ActorID:      actorID,
			FieldChanged: constants.HistoryFieldStatus,
			OldValue:     from,
			NewValue:     t.To,
			Description:  fmt.Sprintf("Status changed from %s to %s", from, t.To),
		}
		if err := tx.Create(history).Error; err != nil {
			return pkgErrors.Wrap(pkgErrors.CodeInternalError, "failed to record task history", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	task.Status = t.To
	task.UpdatedAt = time.Now()
	sm.logger.Info("task status changed",
		zap.Int64("task_id", task.ID),
		zap.String("from", from),
		zap.String("to", t.To),
	)
	return t.SuccessStatus, nil
}
