package repository

import (
	"github.com/minhvu/user-admin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

// Create creates a new role
func (r *GormRoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// FindByName finds a role by its unique name
func (r *GormRoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Attach links a role to a user. Re-attaching an existing pair only
// refreshes the pivot's updated_at.
func (r *GormRoleRepository) Attach(roleID, userID uint64) error {
	assignment := models.RoleAssignment{
		RoleID: roleID,
		UserID: userID,
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": gorm.Expr("CURRENT_TIMESTAMP")}),
		}).
		Create(&assignment).Error
}

// SyncUserRole makes roleID the user's only role: every other assignment
// is removed and the target assignment is created if absent.
func (r *GormRoleRepository) SyncUserRole(userID, roleID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND role_id <> ?", userID, roleID).
			Delete(&models.RoleAssignment{}).Error; err != nil {
			return err
		}

		assignment := models.RoleAssignment{
			RoleID: roleID,
			UserID: userID,
		}

		return tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "role_id"}, {Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": gorm.Expr("CURRENT_TIMESTAMP")}),
			}).
			Create(&assignment).Error
	})
}

// ListForUser lists the roles held by a user
func (r *GormRoleRepository) ListForUser(userID uint64) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Model(&models.Role{}).
		Joins("JOIN role_user ON role_user.role_id = roles.id").
		Where("role_user.user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
