package dto

import (
	"time"

	"github.com/Employeest/employeest-be/internal/model"
)

// CreateWorkLogRequest records time against exactly one of a task or project.
type CreateWorkLogRequest struct {
	TaskID      *int64  `json:"task_id" binding:"omitempty,min=1"`
	ProjectID   *int64  `json:"project_id" binding:"omitempty,min=1"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	HoursSpent  float64 `json:"hours_spent" binding:"required,gt=0"`
	Description *string `json:"description"`
}

// UpdateWorkLogRequest partially updates a work log. Nil fields are untouched.
type UpdateWorkLogRequest struct {
	TaskID      *int64   `json:"task_id"`
	ProjectID   *int64   `json:"project_id"`
	Date        *string  `json:"date"` // YYYY-MM-DD
	HoursSpent  *float64 `json:"hours_spent" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
}

// WorkLogListQuery pages through visible work logs.
type WorkLogListQuery struct {
	PageQuery
}

// WorkLogResponse is one time record.
type WorkLogResponse struct {
	ID          int64         `json:"id"`
	User        *UserResponse `json:"user"`
	TaskID      *int64        `json:"task_id"`
	ProjectID   *int64        `json:"project_id"`
	Date        string        `json:"date"`
	HoursSpent  float64       `json:"hours_spent"`
	Description *string       `json:"description"`
	CreatedAt   string        `json:"created_at"`
}

func NewWorkLogResponse(w *model.WorkLog) *WorkLogResponse {
	resp := &WorkLogResponse{
		ID:          w.ID,
		TaskID:      w.TaskID,
		ProjectID:   w.ProjectID,
		Date:        time.Time(w.Date).Format("2006-01-02"),
		HoursSpent:  w.HoursSpent,
		Description: w.Description,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
	}
	if w.User != nil {
		resp.User = NewUserResponse(w.User)
	}
	return resp
}
