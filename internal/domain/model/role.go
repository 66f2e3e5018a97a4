package model

import "fmt"

// Role identifies which principal class an actor belongs to. The four roles
// live in disjoint identity spaces: each has its own principal table, its own
// session table, and its own notification table.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleFacility  Role = "facility"
	RoleOrganiser Role = "organiser"
	RoleAdmin     Role = "admin"
)

// AllRoles lists every known role, in a stable order.
func AllRoles() []Role {
	return []Role{RoleDonor, RoleFacility, RoleOrganiser, RoleAdmin}
}

// ParseRole converts a string claim into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDonor, RoleFacility, RoleOrganiser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Table returns the principal table backing the role.
func (r Role) Table() string {
	switch r {
	case RoleDonor:
		return "donors"
	case RoleFacility:
		return "facilities"
	case RoleOrganiser:
		return "organisers"
	case RoleAdmin:
		return "admins"
	}
	return ""
}

// SessionTable returns the session-ledger table for the role.
func (r Role) SessionTable() string {
	switch r {
	case RoleDonor:
		return "donor_sessions"
	case RoleFacility:
		return "facility_sessions"
	case RoleOrganiser:
		return "organiser_sessions"
	case RoleAdmin:
		return "admin_sessions"
	}
	return ""
}

// NotificationTable returns the notification table for the role.
func (r Role) NotificationTable() string {
	switch r {
	case RoleDonor:
		return "donor_notifications"
	case RoleFacility:
		return "facility_notifications"
	case RoleOrganiser:
		return "organiser_notifications"
	case RoleAdmin:
		return "admin_notifications"
	}
	return ""
}

// NaturalKeyColumn returns the unique column used to authenticate the role.
// Donors sign in with their national IC number; everyone else with email.
func (r Role) NaturalKeyColumn() string {
	if r == RoleDonor {
		return "ic_number"
	}
	return "email"
}

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
