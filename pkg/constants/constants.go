package constants

// TaskStatus values. IN_REVIEW is a valid resting state but is not reachable
// through the explicit transition actions.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusInReview   = "in_review"
	TaskStatusDone       = "DONE"
	TaskStatusCancelled  = "CANCELLED"
)

// TaskStatuses lists every valid task status.
var TaskStatuses = []string{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusInReview,
	TaskStatusDone,
	TaskStatusCancelled,
}

// Task priority
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

// Project status
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
)

// User roles
const (
	UserRoleOwner       = "owner"
	UserRoleEmployee    = "employee"
	UserRoleTopEmployee = "top_employee"
	UserRoleAdmin       = "admin"
)

// Team member roles
const (
	TeamRolePM     = "pm"
	TeamRoleMember = "member"
	TeamRoleLead   = "lead"
)

// Task history events
const (
	HistoryEventCreated     = "created"
	HistoryFieldStatus      = "status"
	HistoryFieldName        = "name"
	HistoryFieldDescription = "description"
	HistoryFieldPriority    = "priority"
	HistoryFieldAssignee    = "assignee"
	HistoryFieldProject     = "project"
	HistoryFieldParent      = "parent_task"
	HistoryFieldDeadline    = "deadline"
	HistoryFieldStoryPoints = "story_points"
	HistoryFieldEstimation  = "estimation_hours"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// JWT
const (
	JWTTypeAccess = "access"
)
