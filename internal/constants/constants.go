package constants

// Session
const (
	SessionCookieName = "admin_session"
	ContextKeyUserID  = "user_id"
)

// Password policy
const (
	MinPasswordLength = 8
)

// Validation limits
const (
	MaxNameLength  = 255
	MaxEmailLength = 255
)

// Well-known role names. Both rows are seeded at startup and must exist
// before any user can be created.
const (
	RoleNameAdmin = "admin"
	RoleNameUser  = "user"
)

// Capability names evaluated by the policy layer
const (
	CapabilityAdminAccess = "admin-access"
)
