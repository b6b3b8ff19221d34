package model

const ProjectTableName = "projects"

// Project is owned by a single user. The owner is always treated as a manager
// even when absent from Managers.
type Project struct {
	BaseModelWithSoftDelete
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	OwnerID     int64   `gorm:"not null;index" json:"owner_id"`
	Status      string  `gorm:"size:20;not null;default:draft;index" json:"status"`

	Owner    *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Managers []User `gorm:"many2many:project_managers" json:"managers,omitempty"`
	Teams    []Team `gorm:"many2many:project_teams" json:"teams,omitempty"`
	Tasks    []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}

// IsManagedBy reports whether the given user is the owner or a listed manager.
func (p *Project) IsManagedBy(userID int64) bool {
	if p.OwnerID == userID {
		return true
	}
	for _, m := range p.Managers {
		if m.ID == userID {
			return true
		}
	}
	return false
}
