package model

import "gorm.io/datatypes"

const WorkLogTableName = "work_logs"

// WorkLog records time spent by a user against exactly one of a task or a
// project. The XOR invariant is enforced by the service before any write.
type WorkLog struct {
	BaseModel
	UserID      int64          `gorm:"not null;index" json:"user_id"`
	TaskID      *int64         `gorm:"index" json:"task_id,omitempty"`
	ProjectID   *int64         `gorm:"index" json:"project_id,omitempty"`
	Date        datatypes.Date `gorm:"not null" json:"date"`
	HoursSpent  float64        `gorm:"type:decimal(5,2);not null" json:"hours_spent"`
	Description *string        `gorm:"type:text" json:"description"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Task    *Task    `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (WorkLog) TableName() string {
	return WorkLogTableName
}
