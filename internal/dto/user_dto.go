package dto

import "github.com/Employeest/employeest-be/internal/model"

// UserSearchQuery filters the read-only user directory.
type UserSearchQuery struct {
	PageQuery
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AssigneeResponse adds a display name for assignment pickers.
type AssigneeResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

func NewUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func NewAssigneeResponse(u *model.User) *AssigneeResponse {
	if u == nil {
		return nil
	}
	display := u.Username
	if u.FirstName != "" && u.LastName != "" {
		display = u.FirstName + " " + u.LastName + " (" + u.Username + ")"
	}
	return &AssigneeResponse{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: display,
	}
}
