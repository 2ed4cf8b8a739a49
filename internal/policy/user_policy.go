package policy

import (
	"github.com/minhvu/user-admin/internal/models"
)

// UserPolicy holds the authorization rules for user records. All methods
// are pure functions of the actor and subject; a nil actor represents an
// unauthenticated request and satisfies no check.
type UserPolicy struct{}

// NewUserPolicy creates a new UserPolicy.
func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// AdminAccess is the global "admin-access" capability check.
func (UserPolicy) AdminAccess(actor *models.User) bool {
	return actor != nil && actor.IsAdmin
}

// AdminOrSelf allows admins and the subject of the record itself.
func (UserPolicy) AdminOrSelf(actor, subject *models.User) bool {
	if actor == nil || subject == nil {
		return false
	}
	return actor.IsAdmin || actor.ID == subject.ID
}

// ViewAny determines whether the actor can list all users.
func (p UserPolicy) ViewAny(actor *models.User) bool {
	return p.AdminAccess(actor)
}

// Create determines whether the actor can create users.
func (p UserPolicy) Create(actor *models.User) bool {
	return p.AdminAccess(actor)
}

// View determines whether the actor can view the subject.
func (p UserPolicy) View(actor, subject *models.User) bool {
	return p.AdminOrSelf(actor, subject)
}

// Update determines whether the actor can update the subject.
func (p UserPolicy) Update(actor, subject *models.User) bool {
	return p.AdminOrSelf(actor, subject)
}

// Delete determines whether the actor can delete the subject.
func (p UserPolicy) Delete(actor, subject *models.User) bool {
	return p.AdminOrSelf(actor, subject)
}

// Restore determines whether the actor can restore the subject.
func (p UserPolicy) Restore(actor, subject *models.User) bool {
	return p.AdminOrSelf(actor, subject)
}

// ForceDelete determines whether the actor can permanently delete the subject.
func (p UserPolicy) ForceDelete(actor, subject *models.User) bool {
	return p.AdminOrSelf(actor, subject)
}
