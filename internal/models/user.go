package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	FirstName    string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Username     string    `gorm:"type:varchar(255);not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Tasks []Task           `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
	Roles []RoleAssignment `gorm:"foreignKey:UserID" json:"-"`
}

// FullName is derived, never persisted.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
