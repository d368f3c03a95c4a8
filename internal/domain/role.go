package domain

// Role is the session-scoped authorization level. It is never persisted;
// the caller supplies it with every mutating operation.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
	RoleUnset  Role = ""
)

// CanMutate reports whether the role is allowed to perform write operations.
func (r Role) CanMutate() bool {
	return r == RoleAdmin
}

// ParseRole maps a raw string onto a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleViewer:
		return RoleViewer, true
	default:
		return RoleUnset, false
	}
}
