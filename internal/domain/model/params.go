package model

import (
	"time"

	"github.com/google/uuid"
)

// RotateParams carries one atomic session rotation: the old refresh jti is
// swapped for the new pair in a single guarded update.
type RotateParams struct {
	OldRefreshTokenID uuid.UUID
	NewRefreshTokenID uuid.UUID
	NewAccessTokenID  uuid.UUID
	PrincipalID       int64
}

// CreateDonorParams carries a new donor row; PasswordHash is already
// encoded by the KDF.
type CreateDonorParams struct {
	ICNumber     string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	BloodTypeID  int64
	StateID      int64
	DistrictID   int64
}

// UpdateDonorParams is a partial update; nil fields are preserved
// unchanged. PasswordHash carries an already-encoded hash.
type UpdateDonorParams struct {
	Name         *string
	Email        *string
	Phone        *string
	BloodTypeID  *int64
	StateID      *int64
	DistrictID   *int64
	PasswordHash *string
	Eligibility  *Eligibility
}

// CreateFacilityParams carries a new facility row.
type CreateFacilityParams struct {
	Email        string
	Name         string
	Phone        string
	Address      string
	PasswordHash string
	StateID      int64
	DistrictID   int64
}

// UpdateFacilityParams is a partial update; nil fields are preserved.
type UpdateFacilityParams struct {
	Email        *string
	Name         *string
	Phone        *string
	Address      *string
	StateID      *int64
	DistrictID   *int64
	PasswordHash *string
}

// CreateOrganiserParams carries a new organiser row.
type CreateOrganiserParams struct {
	Email        string
	Name         string
	Phone        string
	PasswordHash string
}

// UpdateOrganiserParams is a partial update; nil fields are preserved.
type UpdateOrganiserParams struct {
	Email        *string
	Name         *string
	Phone        *string
	PasswordHash *string
}

// CreateAdminParams carries a new admin row.
type CreateAdminParams struct {
	Email        string
	Name         string
	PasswordHash string
}

// UpdateAdminParams is a partial update; nil fields are preserved.
type UpdateAdminParams struct {
	Email        *string
	Name         *string
	PasswordHash *string
}

// CreateNewRequestParams carries a proposed brand-new event.
type CreateNewRequestParams struct {
	Address      string
	StartTime    time.Time
	EndTime      time.Time
	MaxAttendees int
	Latitude     float64
	Longitude    float64
	FacilityID   int64
	OrganiserID  int64
	StateID      int64
	DistrictID   int64
}

// CreateChangeRequestParams carries a proposed amendment to a live event.
type CreateChangeRequestParams struct {
	EventID      int64
	ChangeReason string
	Address      string
	StartTime    time.Time
	EndTime      time.Time
	MaxAttendees int
	Latitude     float64
	Longitude    float64
	FacilityID   int64
	OrganiserID  int64
	StateID      int64
	DistrictID   int64
}

// RequestFilter narrows request listings to one party. Zero values mean no
// filtering on that party.
type RequestFilter struct {
	OrganiserID int64
	FacilityID  int64
}
