package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

// AuthConfig groups token signing and password hashing configuration.
type AuthConfig struct {
	// AccessTokenKey is the base64url-encoded HMAC key for access tokens.
	AccessTokenKey string `env:"ACCESS_TOKEN_KEY,required"`

	// RefreshTokenKey is the base64url-encoded HMAC key for refresh tokens.
	// Must differ from AccessTokenKey so one leaked key cannot forge both.
	RefreshTokenKey string `env:"REFRESH_TOKEN_KEY,required"`

	// Per-role token lifetimes. Shorter-lived roles hold more privilege.
	DonorAccessTTL      time.Duration `env:"DONOR_ACCESS_TTL"      envDefault:"15m"`
	DonorRefreshTTL     time.Duration `env:"DONOR_REFRESH_TTL"     envDefault:"360h"`
	OrganiserAccessTTL  time.Duration `env:"ORGANISER_ACCESS_TTL"  envDefault:"15m"`
	OrganiserRefreshTTL time.Duration `env:"ORGANISER_REFRESH_TTL" envDefault:"360h"`
	FacilityAccessTTL   time.Duration `env:"FACILITY_ACCESS_TTL"   envDefault:"10m"`
	FacilityRefreshTTL  time.Duration `env:"FACILITY_REFRESH_TTL"  envDefault:"168h"`
	AdminAccessTTL      time.Duration `env:"ADMIN_ACCESS_TTL"      envDefault:"5m"`
	AdminRefreshTTL     time.Duration `env:"ADMIN_REFRESH_TTL"     envDefault:"72h"`

	// KDFWorkers caps concurrent argon2id computations. Zero means GOMAXPROCS.
	KDFWorkers int64 `env:"KDF_WORKERS" envDefault:"0"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	defaults := model.DefaultTokenTTLs()
	clamp := func(d *time.Duration, fallback time.Duration) {
		if *d <= 0 {
			*d = fallback
		}
	}
	clamp(&a.DonorAccessTTL, defaults[model.RoleDonor].Access)
	clamp(&a.DonorRefreshTTL, defaults[model.RoleDonor].Refresh)
	clamp(&a.OrganiserAccessTTL, defaults[model.RoleOrganiser].Access)
	clamp(&a.OrganiserRefreshTTL, defaults[model.RoleOrganiser].Refresh)
	clamp(&a.FacilityAccessTTL, defaults[model.RoleFacility].Access)
	clamp(&a.FacilityRefreshTTL, defaults[model.RoleFacility].Refresh)
	clamp(&a.AdminAccessTTL, defaults[model.RoleAdmin].Access)
	clamp(&a.AdminRefreshTTL, defaults[model.RoleAdmin].Refresh)
	if a.KDFWorkers < 0 {
		a.KDFWorkers = 0
	}
}

// TTLs returns the per-role token lifetimes as a lookup map.
func (a AuthConfig) TTLs() map[model.Role]model.TokenTTL {
	return map[model.Role]model.TokenTTL{
		model.RoleDonor:     {Access: a.DonorAccessTTL, Refresh: a.DonorRefreshTTL},
		model.RoleOrganiser: {Access: a.OrganiserAccessTTL, Refresh: a.OrganiserRefreshTTL},
		model.RoleFacility:  {Access: a.FacilityAccessTTL, Refresh: a.FacilityRefreshTTL},
		model.RoleAdmin:     {Access: a.AdminAccessTTL, Refresh: a.AdminRefreshTTL},
	}
}

// DecodeKeys decodes the base64url-encoded signing keys.
func (a AuthConfig) DecodeKeys() (accessKey, refreshKey []byte, err error) {
	accessKey, err = base64.RawURLEncoding.DecodeString(a.AccessTokenKey)
	if err != nil {
		return nil, nil, fmt.Errorf("decode ACCESS_TOKEN_KEY: %w", err)
	}
	refreshKey, err = base64.RawURLEncoding.DecodeString(a.RefreshTokenKey)
	if err != nil {
		return nil, nil, fmt.Errorf("decode REFRESH_TOKEN_KEY: %w", err)
	}
	return accessKey, refreshKey, nil
}
