package dto

import (
	"time"

	"github.com/Employeest/employeest-be/internal/model"
)

// CreateCommentRequest posts a comment on a task.
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// UpdateCommentRequest edits a comment's body.
type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentResponse is one task comment.
type CommentResponse struct {
	ID        int64         `json:"id"`
	TaskID    int64         `json:"task_id"`
	Author    *UserResponse `json:"author"`
	Body      string        `json:"body"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

func NewCommentResponse(c *model.TaskComment) *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.Author != nil {
		resp.Author = NewUserResponse(c.Author)
	}
	return resp
}
