package dto

import "github.com/Employeest/employeest-be/internal/model"

// AddTeamMemberRequest adds a user to a team.
type AddTeamMemberRequest struct {
	UserID int64  `json:"user_id" binding:"required,min=1"`
	Role   string `json:"role" binding:"omitempty,oneof=pm member lead"`
}

// UpdateTeamMemberRequest changes a membership's role.
type UpdateTeamMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=pm member lead"`
}

// TeamMemberResponse is one membership record.
type TeamMemberResponse struct {
	ID     int64         `json:"id"`
	TeamID int64         `json:"team_id"`
	Role   string        `json:"role"`
	User   *UserResponse `json:"user"`
}

func NewTeamMemberResponse(m *model.TeamMember) *TeamMemberResponse {
	resp := &TeamMemberResponse{
		ID:     m.ID,
		TeamID: m.TeamID,
		Role:   m.Role,
	}
	if m.User != nil {
		resp.User = NewUserResponse(m.User)
	}
	return resp
}
