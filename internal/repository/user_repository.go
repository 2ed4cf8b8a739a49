package repository

import (
	"errors"
	"fmt"

	"github.com/minhvu/user-admin/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrDeleteTasks is returned when deleting the user's tasks fails inside the cascade transaction.
	ErrDeleteTasks = errors.New("user repository: delete tasks failed")
	// ErrDetachRoles is returned when detaching the user's role assignments fails inside the cascade transaction.
	ErrDetachRoles = errors.New("user repository: detach roles failed")
	// ErrDeleteUser is returned when deleting the user row fails inside the cascade transaction.
	ErrDeleteUser = errors.New("user repository: delete user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id uint64, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll lists every user with optional preloading
func (r *GormUserRepository) FindAll(preload ...string) ([]models.User, error) {
	var users []models.User
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Order("users.id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// CountAdmins counts users with the admin flag set
func (r *GormUserRepository) CountAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error
	return count, err
}

// DeleteCascade removes the user's tasks, role assignments, and the user
// row atomically. Any failure rolls back the whole sequence.
func (r *GormUserRepository) DeleteCascade(userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteTasks, err)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.RoleAssignment{}).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDetachRoles, err)
		}

		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrDeleteUser, err)
		}

		return nil
	})
}
