package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// validate is the shared validator instance. Request DTOs declare their
// constraints as struct tags and funnel failures through validateStruct so
// every handler surfaces the same INVALID(field) shape.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs struct-tag validation and converts the first failure
// into a field-scoped validation error with the JSON field name.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.ValidationField(jsonFieldName(fe), "invalid value for "+jsonFieldName(fe))
	}
	return apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid request body")
}

// jsonFieldName lower-camels the struct field name so error payloads match
// the request body keys.
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "body"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// RegisterDonorRequest is the body of POST /api/user-register.
type RegisterDonorRequest struct {
	ICNumber    string `json:"icNumber"    validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"       validate:"required"`
	Password    string `json:"password"    validate:"required,min=8"`
	BloodTypeID int64  `json:"bloodTypeId" validate:"required,gt=0"`
	StateID     int64  `json:"stateId"     validate:"required,gt=0"`
	DistrictID  int64  `json:"districtId"  validate:"required,gt=0"`
}

func (r *RegisterDonorRequest) Validate() error { return validateStruct(r) }

// RegisterFacilityRequest is the body of POST /api/facility-register.
type RegisterFacilityRequest struct {
	Email      string `json:"email"      validate:"required,email"`
	Name       string `json:"name"       validate:"required"`
	Phone      string `json:"phone"      validate:"required"`
	Address    string `json:"address"    validate:"required"`
	Password   string `json:"password"   validate:"required,min=8"`
	StateID    int64  `json:"stateId"    validate:"required,gt=0"`
	DistrictID int64  `json:"districtId" validate:"required,gt=0"`
}

func (r *RegisterFacilityRequest) Validate() error { return validateStruct(r) }

// RegisterOrganiserRequest is the body of POST /api/organiser-register.
type RegisterOrganiserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterOrganiserRequest) Validate() error { return validateStruct(r) }

// RegisterAdminRequest is the body of POST /api/admin-register.
type RegisterAdminRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterAdminRequest) Validate() error { return validateStruct(r) }

// UpdateDonorRequest is the partial-update body of PATCH /api/user. Absent
// fields are left unchanged. Changing the password requires the current one.
type UpdateDonorRequest struct {
	Name            *string `json:"name"            validate:"omitempty,min=1"`
	Email           *string `json:"email"           validate:"omitempty,email"`
	Phone           *string `json:"phone"           validate:"omitempty,min=1"`
	BloodTypeID     *int64  `json:"bloodTypeId"     validate:"omitempty,gt=0"`
	StateID         *int64  `json:"stateId"         validate:"omitempty,gt=0"`
	DistrictID      *int64  `json:"districtId"      validate:"omitempty,gt=0"`
	Password        *string `json:"password"        validate:"omitempty,min=8"`
	CurrentPassword *string `json:"currentPassword" validate:"required_with=Password"`
}

func (r *UpdateDonorRequest) Validate() error { return validateStruct(r) }

// UpdateFacilityRequest is the partial-update body of PATCH /api/facility.
type UpdateFacilityRequest struct {
	Name            *string `json:"name"            validate:"omitempty,min=1"`
	Email           *string `json:"email"           validate:"omitempty,email"`
	Phone           *string `json:"phone"           validate:"omitempty,min=1"`
	Address         *string `json:"address"         validate:"omitempty,min=1"`
	StateID         *int64  `json:"stateId"         validate:"omitempty,gt=0"`
	DistrictID      *int64  `json:"districtId"      validate:"omitempty,gt=0"`
	Password        *string `json:"password"        validate:"omitempty,min=8"`
	CurrentPassword *string `json:"currentPassword" validate:"required_with=Password"`
}

func (r *UpdateFacilityRequest) Validate() error { return validateStruct(r) }

// UpdateOrganiserRequest is the partial-update body of PATCH /api/organiser.
type UpdateOrganiserRequest struct {
	Name            *string `json:"name"            validate:"omitempty,min=1"`
	Email           *string `json:"email"           validate:"omitempty,email"`
	Phone           *string `json:"phone"           validate:"omitempty,min=1"`
	Password        *string `json:"password"        validate:"omitempty,min=8"`
	CurrentPassword *string `json:"currentPassword" validate:"required_with=Password"`
}

func (r *UpdateOrganiserRequest) Validate() error { return validateStruct(r) }

// UpdateAdminRequest is the partial-update body of PATCH /api/admin.
type UpdateAdminRequest struct {
	Name            *string `json:"name"            validate:"omitempty,min=1"`
	Email           *string `json:"email"           validate:"omitempty,email"`
	Password        *string `json:"password"        validate:"omitempty,min=8"`
	CurrentPassword *string `json:"currentPassword" validate:"required_with=Password"`
}

func (r *UpdateAdminRequest) Validate() error { return validateStruct(r) }

// CreateNewEventRequest is the body of POST /api/new-event-request.
type CreateNewEventRequest struct {
	Address      string    `json:"address"      validate:"required"`
	StartTime    time.Time `json:"startTime"    validate:"required"`
	EndTime      time.Time `json:"endTime"      validate:"required,gtfield=StartTime"`
	MaxAttendees int       `json:"maxAttendees" validate:"required,gt=0"`
	Latitude     float64   `json:"latitude"     validate:"min=-90,max=90"`
	Longitude    float64   `json:"longitude"    validate:"min=-180,max=180"`
	FacilityID   int64     `json:"facilityId"   validate:"required,gt=0"`
	StateID      int64     `json:"stateId"      validate:"required,gt=0"`
	DistrictID   int64     `json:"districtId"   validate:"required,gt=0"`
}

func (r *CreateNewEventRequest) Validate() error { return validateStruct(r) }

// CreateChangeEventRequest is the body of POST /api/change-event-request.
type CreateChangeEventRequest struct {
	EventID      int64     `json:"eventId"      validate:"required,gt=0"`
	ChangeReason string    `json:"changeReason" validate:"required"`
	Address      string    `json:"address"      validate:"required"`
	StartTime    time.Time `json:"startTime"    validate:"required"`
	EndTime      time.Time `json:"endTime"      validate:"required,gtfield=StartTime"`
	MaxAttendees int       `json:"maxAttendees" validate:"required,gt=0"`
	Latitude     float64   `json:"latitude"     validate:"min=-90,max=90"`
	Longitude    float64   `json:"longitude"    validate:"min=-180,max=180"`
	FacilityID   int64     `json:"facilityId"   validate:"required,gt=0"`
	StateID      int64     `json:"stateId"      validate:"required,gt=0"`
	DistrictID   int64     `json:"districtId"   validate:"required,gt=0"`
}

func (r *CreateChangeEventRequest) Validate() error { return validateStruct(r) }

// ResolveEventRequest is the body of PATCH /api/new-event-request and
// PATCH /api/change-event-request: the facility's approve/reject decision.
type ResolveEventRequest struct {
	RequestID       int64         `json:"requestId"       validate:"required,gt=0"`
	Status          RequestStatus `json:"status"          validate:"required,oneof=approved rejected"`
	RejectionReason *string       `json:"rejectionReason" validate:"omitempty,min=1"`
}

// Validate checks the decision shape; a rejection must carry a reason.
func (r *ResolveEventRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Status == RequestStatusRejected && (r.RejectionReason == nil || strings.TrimSpace(*r.RejectionReason) == "") {
		return apperrors.ValidationField("rejectionReason", "rejection requires a reason")
	}
	return nil
}

// RegisterForEventRequest is the body of POST /api/registration/register.
type RegisterForEventRequest struct {
	EventID int64 `json:"eventId" validate:"required,gt=0"`
}

func (r *RegisterForEventRequest) Validate() error { return validateStruct(r) }

// UpdateRegistrationRequest is the body of PATCH /api/registration: the
// hosting facility records a donor as absent or attended.
type UpdateRegistrationRequest struct {
	RegistrationID int64              `json:"registrationId" validate:"required,gt=0"`
	Status         RegistrationStatus `json:"status"         validate:"required,oneof=absent attended"`
}

func (r *UpdateRegistrationRequest) Validate() error { return validateStruct(r) }
