package model

import "time"

// TokenTTL is one role's access/refresh lifetime pair.
type TokenTTL struct {
	Access  time.Duration
	Refresh time.Duration
}

// DefaultTokenTTLs returns the per-role token lifetimes. Shorter-lived roles
// carry more authority: admins rotate fastest, donors slowest.
func DefaultTokenTTLs() map[Role]TokenTTL {
	return map[Role]TokenTTL{
		RoleDonor:     {Access: 15 * time.Minute, Refresh: 15 * 24 * time.Hour},
		RoleFacility:  {Access: 10 * time.Minute, Refresh: 7 * 24 * time.Hour},
		RoleOrganiser: {Access: 15 * time.Minute, Refresh: 15 * 24 * time.Hour},
		RoleAdmin:     {Access: 5 * time.Minute, Refresh: 3 * 24 * time.Hour},
	}
}
