package model

const TeamTableName = "teams"
const TeamMemberTableName = "team_members"

// Team groups users under a single owning user.
type Team struct {
	BaseModelWithSoftDelete
	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	OwnerID     int64   `gorm:"not null;index" json:"owner_id"`

	Owner   *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return TeamTableName
}

// TeamMember links a user to a team. (team_id, user_id) is unique.
type TeamMember struct {
	BaseModel
	TeamID int64  `gorm:"column:team_id;not null;uniqueIndex:idx_team_user" json:"team_id"`
	UserID int64  `gorm:"column:user_id;not null;uniqueIndex:idx_team_user" json:"user_id"`
	Role   string `gorm:"size:20;not null;default:member" json:"role"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TeamMember) TableName() string {
	return TeamMemberTableName
}
