package model

import "time"

const UserTableName = "users"
const AuthTokenTableName = "auth_tokens"

// User is a registered account. Role decides dashboard access; IsStaff grants
// read access across task and work-log scoping.
type User struct {
	BaseModel
	Username    string     `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email       string     `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	FirstName   string     `gorm:"size:150" json:"first_name"`
	LastName    string     `gorm:"size:150" json:"last_name"`
	PhoneNumber string     `gorm:"size:32" json:"phone_number"`
	Role        string     `gorm:"size:20;not null;default:employee;index" json:"role"`
	IsStaff     bool       `gorm:"not null;default:false" json:"is_staff"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	TeamMembers []TeamMember `gorm:"foreignKey:UserID;references:ID" json:"team_members,omitempty"`
}

func (User) TableName() string {
	return UserTableName
}

// AuthToken is the revocable record behind an issued bearer token. Logout
// deletes the row; the middleware rejects tokens with no backing row.
type AuthToken struct {
	BaseModel
	Key       string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuthToken) TableName() string {
	return AuthTokenTableName
}
