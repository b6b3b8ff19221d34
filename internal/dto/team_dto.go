package dto

import "github.com/Employeest/employeest-be/internal/model"

// CreateTeamRequest creates a team owned by the current user.
type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}

// UpdateTeamRequest partially updates a team.
type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// TeamResponse is the full team view with its member list.
type TeamResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	Owner       *UserResponse         `json:"owner"`
	Members     []*TeamMemberResponse `json:"members"`
}

// TeamSimpleResponse is the compact team view used on dashboards.
type TeamSimpleResponse struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Owner *UserResponse `json:"owner"`
}

func NewTeamResponse(t *model.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Members:     make([]*TeamMemberResponse, 0, len(t.Members)),
	}
	if t.Owner != nil {
		resp.Owner = NewUserResponse(t.Owner)
	}
	for i := range t.Members {
		resp.Members = append(resp.Members, NewTeamMemberResponse(&t.Members[i]))
	}
	return resp
}

func NewTeamSimpleResponse(t *model.Team) *TeamSimpleResponse {
	resp := &TeamSimpleResponse{
		ID:   t.ID,
		Name: t.Name,
	}
	if t.Owner != nil {
		resp.Owner = NewUserResponse(t.Owner)
	}
	return resp
}
