package dto

import (
	"time"

	"github.com/Employeest/employeest-be/internal/model"
)

// CreateTaskRequest creates a task inside a project.
type CreateTaskRequest struct {
	ProjectID       int64    `json:"project_id" binding:"required,min=1"`
	ParentTaskID    *int64   `json:"parent_task_id" binding:"omitempty,min=1"`
	Name            string   `json:"name" binding:"required,max=200"`
	Description     string   `json:"description"`
	Status          string   `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS in_review DONE CANCELLED"`
	Priority        string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AssigneeID      *int64   `json:"assignee_id" binding:"omitempty,min=1"`
	StoryPoints     *int     `json:"story_points" binding:"omitempty,min=0"`
	Deadline        *string  `json:"deadline"` // YYYY-MM-DD
	EstimationHours *float64 `json:"estimation_hours" binding:"omitempty,min=0"`
}

// UpdateTaskRequest partially updates a task. Nil fields are untouched.
type UpdateTaskRequest struct {
	ProjectID       *int64   `json:"project_id" binding:"omitempty,min=1"`
	ParentTaskID    *int64   `json:"parent_task_id"`
	Name            *string  `json:"name" binding:"omitempty,max=200"`
	Description     *string  `json:"description"`
	Status          *string  `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS in_review DONE CANCELLED"`
	Priority        *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AssigneeID      *int64   `json:"assignee_id"`
	StoryPoints     *int     `json:"story_points" binding:"omitempty,min=0"`
	Deadline        *string  `json:"deadline"` // YYYY-MM-DD, empty string clears
	EstimationHours *float64 `json:"estimation_hours" binding:"omitempty,min=0"`
}

// TaskListQuery filters the task list.
type TaskListQuery struct {
	PageQuery
	ProjectID      *int64 `form:"project_id"`
	Status         string `form:"status" binding:"omitempty,oneof=TODO IN_PROGRESS in_review DONE CANCELLED"`
	StatusIn       string `form:"status__in"` // comma separated status values
	AssigneeID     *int64 `form:"assignee_id"`
	AssigneeIsNull *bool  `form:"assignee_id__isnull"`
	NameContains   string `form:"name__icontains"`
	ProjectName    string `form:"project_name"` // matched case-insensitively against project name
	DeadlineAfter  string `form:"deadline_after"`
	DeadlineBefore string `form:"deadline_before"`
}

// TaskResponse is the full task view.
type TaskResponse struct {
	ID              int64             `json:"id"`
	ProjectID       int64             `json:"project_id"`
	ProjectName     string            `json:"project_name"`
	ParentTaskID    *int64            `json:"parent_task_id"`
	Name            string            `json:"name"`
	Description     *string           `json:"description"`
	Status          string            `json:"status"`
	Priority        string            `json:"priority"`
	Assignee        *AssigneeResponse `json:"assignee"`
	StoryPoints     *int              `json:"story_points"`
	Deadline        *string           `json:"deadline"`
	EstimationHours *float64          `json:"estimation_hours"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// TaskSimpleResponse is the compact task view embedded in projects and dashboards.
type TaskSimpleResponse struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Assignee *UserResponse `json:"assignee"`
	Deadline *string       `json:"deadline"`
}

// TaskHistoryResponse is one append-only change record.
type TaskHistoryResponse struct {
	ID           int64         `json:"id"`
	TaskID       int64         `json:"task_id"`
	Actor        *UserResponse `json:"actor"`
	FieldChanged string        `json:"field_changed"`
	OldValue     string        `json:"old_value"`
	NewValue     string        `json:"new_value"`
	Description  string        `json:"description"`
	CreatedAt    string        `json:"created_at"`
}

// TransitionResponse reports the outcome of a status transition.
type TransitionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewTaskResponse(t *model.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:              t.ID,
		ProjectID:       t.ProjectID,
		ParentTaskID:    t.ParentTaskID,
		Name:            t.Name,
		Description:     t.Description,
		Status:          t.Status,
		Priority:        t.Priority,
		StoryPoints:     t.StoryPoints,
		EstimationHours: t.EstimationHours,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
	if t.Project != nil {
		resp.ProjectName = t.Project.Name
	}
	if t.Assignee != nil {
		resp.Assignee = NewAssigneeResponse(t.Assignee)
	}
	if t.Deadline != nil {
		d := time.Time(*t.Deadline).Format("2006-01-02")
		resp.Deadline = &d
	}
	return resp
}

func NewTaskSimpleResponse(t *model.Task) *TaskSimpleResponse {
	resp := &TaskSimpleResponse{
		ID:     t.ID,
		Name:   t.Name,
		Status: t.Status,
	}
	if t.Assignee != nil {
		resp.Assignee = NewUserResponse(t.Assignee)
	}
	if t.Deadline != nil {
		d := time.Time(*t.Deadline).Format("2006-01-02")
		resp.Deadline = &d
	}
	return resp
}

func NewTaskHistoryResponse(h *model.TaskHistory) *TaskHistoryResponse {
	resp := &TaskHistoryResponse{
		ID:           h.ID,
		TaskID:       h.TaskID,
		FieldChanged: h.FieldChanged,
		OldValue:     h.OldValue,
		NewValue:     h.NewValue,
		Description:  h.Description,
		CreatedAt:    h.CreatedAt.Format(time.RFC3339),
	}
	if h.Actor != nil {
		resp.Actor = NewUserResponse(h.Actor)
	}
	return resp
}
