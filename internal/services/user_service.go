package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minhvu/user-admin/internal/constants"
	"github.com/minhvu/user-admin/internal/models"
	"github.com/minhvu/user-admin/internal/repository"
	"github.com/minhvu/user-admin/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already exists")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrUserNotFound         = errors.New("user not found")
	ErrLastAdmin            = errors.New("cannot delete the last admin user")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService owns the user lifecycle: creation with role attachment,
// updates with role re-sync, and the guarded cascade delete.
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// CreateUserInput represents the required information to create a new user.
// MakeAdmin is deliberately unreachable from request binding; only
// already-authorized code paths set it.
type CreateUserInput struct {
	FirstName            string
	LastName             string
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	MakeAdmin            bool
}

// UpdateUserInput represents the fields a profile update may change.
type UpdateUserInput struct {
	Username string
}

// CreateUser validates the input, stores the user, and attaches the role
// matching the admin flag. Every creation path goes through here so the
// role attachment can never be skipped.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if input.Password != input.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     utils.Slugify(input.Username),
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
		IsAdmin:      input.MakeAdmin,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.attachTierRole(user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser updates the user's username and re-syncs their role. The sync
// always runs from the current in-memory admin flag, even when the flag did
// not change; the extra write is idempotent and mirrors the pre-update hook
// this replaces.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.syncTierRole(user); err != nil {
		return nil, err
	}

	user.Username = utils.Slugify(input.Username)
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// SetAdminStatus is the only path that flips the admin flag. It persists
// the flag and syncs the role set to match.
func (s *UserService) SetAdminStatus(id uint64, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.IsAdmin = isAdmin
	if err := s.syncTierRole(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user together with their tasks and role
// assignments. Deleting the last remaining admin is refused before any
// mutation happens.
func (s *UserService) DeleteUser(id uint64) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.IsAdmin {
		count, err := s.userRepo.CountAdmins()
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if count <= 1 {
			return ErrLastAdmin
		}
	}

	if err := s.userRepo.DeleteCascade(user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID with optional preloading.
func (s *UserService) GetUser(id uint64, preload ...string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListUsers returns every user with their tasks eagerly loaded, so the
// listing renders without a per-user task query.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll("Tasks")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// attachTierRole adds the single role matching the user's admin flag.
func (s *UserService) attachTierRole(user *models.User) error {
	role, err := s.findTierRole(user.IsAdmin)
	if err != nil {
		return err
	}
	if err := s.roleRepo.Attach(role.ID, user.ID); err != nil {
		return fmt.Errorf("failed to attach role %q: %w", role.Name, err)
	}
	return nil
}

// syncTierRole makes the role matching the admin flag the user's only role.
func (s *UserService) syncTierRole(user *models.User) error {
	role, err := s.findTierRole(user.IsAdmin)
	if err != nil {
		return err
	}
	if err := s.roleRepo.SyncUserRole(user.ID, role.ID); err != nil {
		return fmt.Errorf("failed to sync role %q: %w", role.Name, err)
	}
	return nil
}

func (s *UserService) findTierRole(isAdmin bool) (*models.Role, error) {
	name := constants.RoleNameUser
	if isAdmin {
		name = constants.RoleNameAdmin
	}

	role, err := s.roleRepo.FindByName(name)
	if err != nil {
		// The admin and user rows are seeded at startup; missing rows mean
		// a broken deployment, not a recoverable request error.
		return nil, fmt.Errorf("role %q is not seeded: %w", name, err)
	}
	return role, nil
}
