package services

import (
	"errors"
	"fmt"

	"github.com/minhvu/user-admin/internal/models"
	"github.com/minhvu/user-admin/internal/repository"
)

var (
	ErrTaskNameRequired = errors.New("task name is required")
	ErrTaskOwnerMissing = errors.New("task owner is required")
)

// TaskService handles task business logic. Tasks are read-mostly here;
// the only writers are the cron insert command and test fixtures, and
// deletion happens solely through the user cascade.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Name        string
	Description string
	UserID      uint64
}

// ListAll returns every task ordered by ID. The listing endpoint is public
// and unfiltered on purpose.
func (s *TaskService) ListAll() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListForUser returns the tasks owned by a single user.
func (s *TaskService) ListForUser(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for user: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task for a user.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Name == "" {
		return nil, ErrTaskNameRequired
	}
	if input.UserID == 0 {
		return nil, ErrTaskOwnerMissing
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}
