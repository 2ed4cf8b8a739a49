package dto

import (
	"time"

	"github.com/minhvu/user-admin/internal/models"
)

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      uint64    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks. The result is never nil so an
// empty listing serializes as [].
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
