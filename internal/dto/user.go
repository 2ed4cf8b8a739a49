package dto

import (
	"time"

	"github.com/minhvu/user-admin/internal/models"
)

// UserDTO represents a user in responses. The password hash has no field
// here at all, so no serialization path can leak it.
type UserDTO struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	Tasks     []TaskDTO `json:"tasks,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}

	// Include tasks if preloaded
	if len(user.Tasks) > 0 {
		dto.Tasks = ToTaskDTOs(user.Tasks)
	}

	return dto
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
