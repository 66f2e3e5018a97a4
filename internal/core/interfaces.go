package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

// Repository interface definitions (ports). Services depend on these
// contracts, not on the pgx implementations in internal/data; the mocks in
// internal/mocks are generated from this file.

// PrincipalRepository resolves login credentials parametrically by role.
type PrincipalRepository interface {
	GetCredentials(ctx context.Context, role model.Role, naturalKey string) (*model.Credentials, error)
	GetCredentialsByID(ctx context.Context, role model.Role, id int64) (*model.Credentials, error)
}

// SessionRepository is the per-role session ledger, the single truth for
// whether a refresh token is still live.
type SessionRepository interface {
	Create(ctx context.Context, role model.Role, s model.Session) error
	Get(ctx context.Context, role model.Role, refreshTokenID uuid.UUID) (*model.Session, error)
	ListByPrincipal(ctx context.Context, role model.Role, principalID int64) ([]model.Session, error)
	Rotate(ctx context.Context, role model.Role, p model.RotateParams) error
	RevokeOne(ctx context.Context, role model.Role, s model.Session) error
	RevokeAll(ctx context.Context, role model.Role, principalID int64) (int64, error)
	Check(ctx context.Context, role model.Role, s model.Session) (bool, error)
}

// DonorRepository defines donor principal data operations.
type DonorRepository interface {
	Create(ctx context.Context, p model.CreateDonorParams) (*model.Donor, error)
	GetByID(ctx context.Context, id int64) (*model.Donor, error)
	GetByICNumber(ctx context.Context, ic string) (*model.Donor, error)
	Update(ctx context.Context, id int64, p model.UpdateDonorParams) (*model.Donor, error)
	ResetExpiredCooldowns(ctx context.Context, cutoff time.Time) ([]int64, error)
}

// FacilityRepository defines facility principal data operations.
type FacilityRepository interface {
	Create(ctx context.Context, p model.CreateFacilityParams) (*model.Facility, error)
	GetByID(ctx context.Context, id int64) (*model.Facility, error)
	List(ctx context.Context) ([]model.Facility, error)
	Update(ctx context.Context, id int64, p model.UpdateFacilityParams) (*model.Facility, error)
}

// OrganiserRepository defines organiser principal data operations.
type OrganiserRepository interface {
	Create(ctx context.Context, p model.CreateOrganiserParams) (*model.Organiser, error)
	GetByID(ctx context.Context, id int64) (*model.Organiser, error)
	Update(ctx context.Context, id int64, p model.UpdateOrganiserParams) (*model.Organiser, error)
}

// AdminRepository defines admin principal data operations.
type AdminRepository interface {
	Create(ctx context.Context, p model.CreateAdminParams) (*model.Admin, error)
	GetByID(ctx context.Context, id int64) (*model.Admin, error)
	Update(ctx context.Context, id int64, p model.UpdateAdminParams) (*model.Admin, error)
}

// NotificationRepository accesses the per-role notification queues.
type NotificationRepository interface {
	ListByPrincipal(ctx context.Context, role model.Role, principalID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, role model.Role, principalID, notificationID int64) error
	Create(ctx context.Context, role model.Role, principalID int64, description string, redirect *string) error
	CreateBulk(ctx context.Context, role model.Role, principalIDs []int64, description string, redirect *string) error
}

// EventRepository reads live events.
type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	ListFuture(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
}

// EventRequestRepository manages new-event and change-event requests and
// their approval transactions.
type EventRequestRepository interface {
	CreateNew(ctx context.Context, p model.CreateNewRequestParams) (*model.NewEventRequest, error)
	CreateChange(ctx context.Context, p model.CreateChangeRequestParams) (*model.ChangeEventRequest, error)
	GetNewByID(ctx context.Context, id int64) (*model.NewEventRequest, error)
	GetChangeByID(ctx context.Context, id int64) (*model.ChangeEventRequest, error)
	ListNew(ctx context.Context, filter model.RequestFilter) ([]model.NewEventRequestDetail, error)
	ListChange(ctx context.Context, filter model.RequestFilter) ([]model.ChangeEventRequestDetail, error)
	ApproveNew(ctx context.Context, requestID, facilityID int64) (*model.NewEventRequest, *model.Event, error)
	ApproveChange(ctx context.Context, requestID, facilityID int64) (*model.ChangeEventRequest, *model.Event, error)
	RejectNew(ctx context.Context, requestID, facilityID int64, reason string) (*model.NewEventRequest, error)
	RejectChange(ctx context.Context, requestID, facilityID int64, reason string) (*model.ChangeEventRequest, error)
}

// RegistrationRepository manages event registrations and attendance
// transitions.
type RegistrationRepository interface {
	Create(ctx context.Context, eventID, donorID int64) (*model.Registration, error)
	GetByID(ctx context.Context, id int64) (*model.Registration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Registration, error)
	ListByDonor(ctx context.Context, donorID int64) ([]model.Registration, error)
	MarkAbsent(ctx context.Context, registrationID int64, notifyDescription string, notifyRedirect *string) (*model.Registration, error)
	MarkAttended(ctx context.Context, registrationID int64, notifyDescription string, notifyRedirect *string) (*model.Registration, error)
}

// DonationRepository reads donation history.
type DonationRepository interface {
	ListByDonor(ctx context.Context, donorID int64) ([]model.DonationHistory, error)
}

// GeoRepository reads the static reference tables.
type GeoRepository interface {
	ListStates(ctx context.Context) ([]model.State, error)
	ListDistricts(ctx context.Context) ([]model.District, error)
	ListBloodTypes(ctx context.Context) ([]model.BloodType, error)
}
