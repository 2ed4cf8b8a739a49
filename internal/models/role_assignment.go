package models

import "time"

// RoleAssignment links one user to one role. The pivot carries its own
// timestamps, independent of the user and role rows.
type RoleAssignment struct {
	RoleID    uint64    `gorm:"primarykey" json:"role_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RoleAssignment) TableName() string {
	return "role_user"
}
