package database

import (
	"fmt"

	"github.com/minhvu/user-admin/internal/constants"
	"github.com/minhvu/user-admin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedRoles makes sure the admin and user role rows exist. User creation
// attaches roles by name, so a missing row is a deployment error; running
// this at startup keeps that failure out of the request path.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: constants.RoleNameAdmin, Description: "Administrator role with full access"},
		{Name: constants.RoleNameUser, Description: "Regular user role with limited access"},
	}

	for _, role := range roles {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&role).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %q: %w", role.Name, err)
		}
	}

	return nil
}
