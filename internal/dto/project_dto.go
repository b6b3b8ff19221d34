package dto

import (
	"time"

	"github.com/Employeest/employeest-be/internal/model"
)

// CreateProjectRequest creates a project owned by the current user.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft active on_hold completed"`
	ManagerIDs  []int64 `json:"manager_ids"`
	TeamIDs     []int64 `json:"team_ids"`
}

// UpdateProjectRequest partially updates a project. Nil fields are untouched.
type UpdateProjectRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft active on_hold completed"`
	ManagerIDs  *[]int64 `json:"manager_ids"`
	TeamIDs     *[]int64 `json:"team_ids"`
}

// ProjectListQuery filters the project list.
type ProjectListQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,oneof=draft active on_hold completed"`
}

// ProjectResponse is the full project view with its tasks.
type ProjectResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	Status      string                `json:"status"`
	Owner       *UserResponse         `json:"owner"`
	Managers    []*UserResponse       `json:"managers"`
	TasksCount  int                   `json:"tasks_count"`
	Tasks       []*TaskSimpleResponse `json:"tasks"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// ProjectSimpleResponse is the compact project view used on dashboards.
type ProjectSimpleResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Status     string        `json:"status"`
	Owner      *UserResponse `json:"owner"`
	TasksCount int           `json:"tasks_count"`
}

// ChartURLResponse wraps a rendered chart image URL.
type ChartURLResponse struct {
	ChartURL string `json:"chart_url"`
}

func NewProjectResponse(p *model.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Managers:    make([]*UserResponse, 0, len(p.Managers)),
		TasksCount:  len(p.Tasks),
		Tasks:       make([]*TaskSimpleResponse, 0, len(p.Tasks)),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Owner != nil {
		resp.Owner = NewUserResponse(p.Owner)
	}
	for i := range p.Managers {
		resp.Managers = append(resp.Managers, NewUserResponse(&p.Managers[i]))
	}
	for i := range p.Tasks {
		resp.Tasks = append(resp.Tasks, NewTaskSimpleResponse(&p.Tasks[i]))
	}
	return resp
}

func NewProjectSimpleResponse(p *model.Project) *ProjectSimpleResponse {
	resp := &ProjectSimpleResponse{
		ID:         p.ID,
		Name:       p.Name,
		Status:     p.Status,
		TasksCount: len(p.Tasks),
	}
	if p.Owner != nil {
		resp.Owner = NewUserResponse(p.Owner)
	}
	return resp
}
