package repository

import (
	"github.com/minhvu/user-admin/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListAll retrieves every task ordered by ID
func (r *GormTaskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("tasks.id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByUserID retrieves the tasks owned by a user
func (r *GormTaskRepository) ListByUserID(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("user_id = ?", userID).Order("tasks.id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
