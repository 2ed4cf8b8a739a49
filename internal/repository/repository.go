package repository

import (
	"github.com/minhvu/user-admin/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindAll lists every user with optional preloading
	FindAll(preload ...string) ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// CountAdmins counts users with the admin flag set
	CountAdmins() (int64, error)

	// DeleteCascade removes the user's tasks, role assignments, and the
	// user row within a single transaction.
	DeleteCascade(userID uint64) error
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	// Create creates a new role
	Create(role *models.Role) error

	// FindByName finds a role by its unique name
	FindByName(name string) (*models.Role, error)

	// Attach links a role to a user
	Attach(roleID, userID uint64) error

	// SyncUserRole makes roleID the user's only role
	SyncUserRole(userID, roleID uint64) error

	// ListForUser lists the roles held by a user
	ListForUser(userID uint64) ([]models.Role, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListAll retrieves every task ordered by ID
	ListAll() ([]models.Task, error)

	// ListByUserID retrieves the tasks owned by a user
	ListByUserID(userID uint64) ([]models.Task, error)
}
