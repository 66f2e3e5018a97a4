package service

import (
	"context"
	"time"

	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// RegistrationServiceOptions groups dependencies for RegistrationService.
type RegistrationServiceOptions struct {
	Registrations core.RegistrationRepository
	Events        core.EventRepository
	Donors        core.DonorRepository
	Donations     core.DonationRepository
	Now           func() time.Time
}

// RegistrationService handles donor sign-up for events and the facility's
// attendance bookkeeping that closes each registration.
type RegistrationService struct {
	registrations core.RegistrationRepository
	events        core.EventRepository
	donors        core.DonorRepository
	donations     core.DonationRepository
	now           func() time.Time
}

// NewRegistrationService constructs a new RegistrationService.
func NewRegistrationService(opts RegistrationServiceOptions) *RegistrationService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &RegistrationService{
		registrations: opts.Registrations,
		events:        opts.Events,
		donors:        opts.Donors,
		donations:     opts.Donations,
		now:           now,
	}
}

// Register signs the calling donor up for an event. The donor must be
// eligible and the event must not have started; the repository enforces the
// capacity limit and the one-registration-per-event constraint.
func (s *RegistrationService) Register(ctx context.Context, donorID int64, req *model.RegisterForEventRequest) (*model.Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	donor, err := s.donors.GetByID(ctx, donorID)
	if err != nil {
		return nil, err
	}
	if donor.Eligibility != model.EligibilityEligible {
		return nil, apperrors.Validation("donor is not currently eligible to donate")
	}
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.StartTime.After(s.now()) {
		return nil, apperrors.Validation("event has already started")
	}
	return s.registrations.Create(ctx, req.EventID, donorID)
}

// UpdateStatus records a donor as absent or attended. Only the facility
// hosting the event may write the transition; attended runs the full
// donation bookkeeping in one transaction.
func (s *RegistrationService) UpdateStatus(ctx context.Context, facilityID int64, req *model.UpdateRegistrationRequest) (*model.Registration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	registration, err := s.registrations.GetByID(ctx, req.RegistrationID)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, registration.EventID)
	if err != nil {
		return nil, err
	}
	if event.FacilityID != facilityID {
		return nil, apperrors.Forbidden("registration belongs to another facility's event")
	}
	if !registration.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.New(apperrors.ErrCodeConflict, "registration already "+string(registration.Status))
	}

	redirect := "event-registrations"
	switch req.Status {
	case model.RegistrationStatusAbsent:
		return s.registrations.MarkAbsent(ctx, req.RegistrationID,
			"You were marked absent from a donation event", &redirect)
	case model.RegistrationStatusAttended:
		historyRedirect := "donation-history"
		return s.registrations.MarkAttended(ctx, req.RegistrationID,
			"Thank you for donating. You re-enter the eligible pool after the cooldown", &historyRedirect)
	default:
		return nil, apperrors.Validation("unsupported registration status")
	}
}

// ListByDonor returns the calling donor's registrations.
func (s *RegistrationService) ListByDonor(ctx context.Context, donorID int64) ([]model.Registration, error) {
	return s.registrations.ListByDonor(ctx, donorID)
}

// ListByEvent returns an event's registrations for the hosting facility or
// owning organiser.
func (s *RegistrationService) ListByEvent(ctx context.Context, role model.Role, principalID, eventID int64) ([]model.Registration, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	allowed := role == model.RoleAdmin ||
		(role == model.RoleFacility && event.FacilityID == principalID) ||
		(role == model.RoleOrganiser && event.OrganiserID == principalID)
	if !allowed {
		return nil, apperrors.Forbidden("event belongs to another principal")
	}
	return s.registrations.ListByEvent(ctx, eventID)
}

// DonationHistory returns the calling donor's completed donations.
func (s *RegistrationService) DonationHistory(ctx context.Context, donorID int64) ([]model.DonationHistory, error) {
	return s.donations.ListByDonor(ctx, donorID)
}
