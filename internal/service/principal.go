package service

import (
	"context"

	"github.com/bloodlink-my/bloodlink/internal/auth"
	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// PrincipalServiceOptions groups dependencies for PrincipalService.
type PrincipalServiceOptions struct {
	Donors      core.DonorRepository
	Facilities  core.FacilityRepository
	Organisers  core.OrganiserRepository
	Admins      core.AdminRepository
	Credentials core.PrincipalRepository
	Hasher      *auth.Hasher
}

// PrincipalService handles registration, profile reads, and partial profile
// updates across the four disjoint principal spaces. Password changes
// require re-proving the current password.
type PrincipalService struct {
	donors      core.DonorRepository
	facilities  core.FacilityRepository
	organisers  core.OrganiserRepository
	admins      core.AdminRepository
	credentials core.PrincipalRepository
	hasher      *auth.Hasher
}

// NewPrincipalService constructs a new PrincipalService.
func NewPrincipalService(opts PrincipalServiceOptions) *PrincipalService {
	return &PrincipalService{
		donors:      opts.Donors,
		facilities:  opts.Facilities,
		organisers:  opts.Organisers,
		admins:      opts.Admins,
		credentials: opts.Credentials,
		hasher:      opts.Hasher,
	}
}

// RegisterDonor creates a donor account.
func (s *PrincipalService) RegisterDonor(ctx context.Context, req *model.RegisterDonorRequest) (*model.Donor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, err
	}
	return s.donors.Create(ctx, model.CreateDonorParams{
		ICNumber:     req.ICNumber,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		BloodTypeID:  req.BloodTypeID,
		StateID:      req.StateID,
		DistrictID:   req.DistrictID,
	})
}

// RegisterFacility creates a facility account.
func (s *PrincipalService) RegisterFacility(ctx context.Context, req *model.RegisterFacilityRequest) (*model.Facility, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, err
	}
	return s.facilities.Create(ctx, model.CreateFacilityParams{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: hash,
		StateID:      req.StateID,
		DistrictID:   req.DistrictID,
	})
}

// RegisterOrganiser creates an organiser account.
func (s *PrincipalService) RegisterOrganiser(ctx context.Context, req *model.RegisterOrganiserRequest) (*model.Organiser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, err
	}
	return s.organisers.Create(ctx, model.CreateOrganiserParams{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: hash,
	})
}

// RegisterAdmin creates an admin account.
func (s *PrincipalService) RegisterAdmin(ctx context.Context, req *model.RegisterAdminRequest) (*model.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, err
	}
	return s.admins.Create(ctx, model.CreateAdminParams{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
}

// Profile returns the caller's profile row for the role in context. The
// password hash never serialises (json:"-" on every principal type).
func (s *PrincipalService) Profile(ctx context.Context, principal auth.Principal) (any, error) {
	switch principal.Role {
	case model.RoleDonor:
		return s.donors.GetByID(ctx, principal.ID)
	case model.RoleFacility:
		return s.facilities.GetByID(ctx, principal.ID)
	case model.RoleOrganiser:
		return s.organisers.GetByID(ctx, principal.ID)
	case model.RoleAdmin:
		return s.admins.GetByID(ctx, principal.ID)
	default:
		return nil, apperrors.Internalf("unknown role %q", principal.Role)
	}
}

// UpdateDonor applies a partial profile update to the calling donor.
func (s *PrincipalService) UpdateDonor(ctx context.Context, donorID int64, req *model.UpdateDonorRequest) (*model.Donor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.passwordChange(ctx, model.RoleDonor, donorID, req.Password, req.CurrentPassword)
	if err != nil {
		return nil, err
	}
	return s.donors.Update(ctx, donorID, model.UpdateDonorParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		BloodTypeID:  req.BloodTypeID,
		StateID:      req.StateID,
		DistrictID:   req.DistrictID,
		PasswordHash: hash,
	})
}

// UpdateFacility applies a partial profile update to the calling facility.
func (s *PrincipalService) UpdateFacility(ctx context.Context, facilityID int64, req *model.UpdateFacilityRequest) (*model.Facility, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.passwordChange(ctx, model.RoleFacility, facilityID, req.Password, req.CurrentPassword)
	if err != nil {
		return nil, err
	}
	return s.facilities.Update(ctx, facilityID, model.UpdateFacilityParams{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		StateID:      req.StateID,
		DistrictID:   req.DistrictID,
		PasswordHash: hash,
	})
}

// UpdateOrganiser applies a partial profile update to the calling organiser.
func (s *PrincipalService) UpdateOrganiser(ctx context.Context, organiserID int64, req *model.UpdateOrganiserRequest) (*model.Organiser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.passwordChange(ctx, model.RoleOrganiser, organiserID, req.Password, req.CurrentPassword)
	if err != nil {
		return nil, err
	}
	return s.organisers.Update(ctx, organiserID, model.UpdateOrganiserParams{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: hash,
	})
}

// UpdateAdmin applies a partial profile update to the calling admin.
func (s *PrincipalService) UpdateAdmin(ctx context.Context, adminID int64, req *model.UpdateAdminRequest) (*model.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := s.passwordChange(ctx, model.RoleAdmin, adminID, req.Password, req.CurrentPassword)
	if err != nil {
		return nil, err
	}
	return s.admins.Update(ctx, adminID, model.UpdateAdminParams{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
}

// passwordChange verifies the current password and hashes the new one when a
// change is requested. Returns nil when the password is untouched.
func (s *PrincipalService) passwordChange(ctx context.Context, role model.Role, principalID int64, newPassword, currentPassword *string) (*string, error) {
	if newPassword == nil {
		return nil, nil
	}
	if currentPassword == nil {
		return nil, apperrors.ValidationField("currentPassword", "current password required to change password")
	}
	creds, err := s.credentials.GetCredentialsByID(ctx, role, principalID)
	if err != nil {
		return nil, err
	}
	if err = s.hasher.Verify(ctx, *currentPassword, creds.PasswordHash); err != nil {
		if apperrors.GetCode(err) == apperrors.ErrCodeLoginWrongPassword {
			return nil, apperrors.New(apperrors.ErrCodeCurrentPassword, "current password does not match")
		}
		return nil, err
	}
	hash, err := s.hasher.Hash(ctx, *newPassword)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}
