package model

import "gorm.io/datatypes"

const TaskTableName = "tasks"
const TaskCommentTableName = "task_comments"
const TaskHistoryTableName = "task_history"

// Task belongs to exactly one project. ParentTaskID forms a tree; only the
// immediate self-reference is rejected at write time.
type Task struct {
	BaseModelWithSoftDelete
	ProjectID       int64           `gorm:"not null;index" json:"project_id"`
	ParentTaskID    *int64          `gorm:"index" json:"parent_task_id,omitempty"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Description     *string         `gorm:"type:text" json:"description"`
	Status          string          `gorm:"size:20;not null;default:TODO;index" json:"status"`
	Priority        string          `gorm:"size:10;not null;default:medium" json:"priority"`
	AssigneeID      *int64          `gorm:"index" json:"assignee_id,omitempty"`
	StoryPoints     *int            `json:"story_points,omitempty"`
	Deadline        *datatypes.Date `json:"deadline,omitempty"`
	EstimationHours *float64        `gorm:"type:decimal(5,2)" json:"estimation_hours,omitempty"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Parent   *Task    `gorm:"foreignKey:ParentTaskID" json:"parent,omitempty"`
	Assignee *User    `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}

func (Task) TableName() string {
	return TaskTableName
}

// TaskComment is writable only by its author.
type TaskComment struct {
	BaseModel
	TaskID   int64  `gorm:"not null;index" json:"task_id"`
	AuthorID int64  `gorm:"not null;index" json:"author_id"`
	Body     string `gorm:"type:text;not null" json:"body"`

	Task   *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (TaskComment) TableName() string {
	return TaskCommentTableName
}

// TaskHistory is an append-only change log entry. Rows are never updated or
// deleted once written.
type TaskHistory struct {
	BaseModel
	TaskID       int64  `gorm:"not null;index" json:"task_id"`
	ActorID      int64  `gorm:"not null;index" json:"actor_id"`
	FieldChanged string `gorm:"size:50;not null" json:"field_changed"`
	OldValue     string `gorm:"type:text" json:"old_value"`
	NewValue     string `gorm:"type:text" json:"new_value"`
	Description  string `gorm:"type:text" json:"description"`

	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

func (TaskHistory) TableName() string {
	return TaskHistoryTableName
}
