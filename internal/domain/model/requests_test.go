package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

func validRegisterDonor() RegisterDonorRequest {
	return RegisterDonorRequest{
		ICNumber:    "880101015678",
		Name:        "Aisyah",
		Email:       "aisyah@example.com",
		Phone:       "+60171234567",
		Password:    "correct-horse",
		BloodTypeID: 1,
		StateID:     1,
		DistrictID:  1,
	}
}

func TestRegisterDonorRequestValidate(t *testing.T) {
	req := validRegisterDonor()
	require.NoError(t, req.Validate())

	req = validRegisterDonor()
	req.Email = "not-an-email"
	err := req.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))

	req = validRegisterDonor()
	req.Password = "short"
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "password", apperrors.GetField(err))

	req = validRegisterDonor()
	req.ICNumber = ""
	err = req.Validate()
	require.Error(t, err)
	assert.Equal(t, "icNumber", apperrors.GetField(err))
}

func TestUpdateDonorRequestPasswordRequiresCurrent(t *testing.T) {
	password := "new-password-1"
	req := UpdateDonorRequest{Password: &password}
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "currentPassword", apperrors.GetField(err))

	current := "old-password-1"
	req.CurrentPassword = &current
	assert.NoError(t, req.Validate())

	// A profile-only patch needs no current password.
	name := "Aisyah"
	assert.NoError(t, (&UpdateDonorRequest{Name: &name}).Validate())
}

func TestCreateNewEventRequestWindow(t *testing.T) {
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	req := CreateNewEventRequest{
		Address:      "Dewan Komuniti",
		StartTime:    start,
		EndTime:      start.Add(8 * time.Hour),
		MaxAttendees: 100,
		Latitude:     3.07,
		Longitude:    101.51,
		FacilityID:   1,
		StateID:      1,
		DistrictID:   1,
	}
	require.NoError(t, req.Validate())

	req.EndTime = start.Add(-time.Hour)
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, "endTime", apperrors.GetField(err))

	req.EndTime = start
	assert.Error(t, req.Validate(), "zero-length window is invalid")
}

func TestResolveEventRequestValidate(t *testing.T) {
	reason := "venue unavailable"
	cases := []struct {
		name      string
		req       ResolveEventRequest
		wantField string
	}{
		{"approve", ResolveEventRequest{RequestID: 1, Status: RequestStatusApproved}, ""},
		{"reject with reason", ResolveEventRequest{RequestID: 1, Status: RequestStatusRejected, RejectionReason: &reason}, ""},
		{"reject without reason", ResolveEventRequest{RequestID: 1, Status: RequestStatusRejected}, "rejectionReason"},
		{"pending is not a decision", ResolveEventRequest{RequestID: 1, Status: RequestStatusPending}, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantField, apperrors.GetField(err))
		})
	}

	blank := "   "
	err := (&ResolveEventRequest{RequestID: 1, Status: RequestStatusRejected, RejectionReason: &blank}).Validate()
	require.Error(t, err)
	assert.Equal(t, "rejectionReason", apperrors.GetField(err))
}

func TestUpdateRegistrationRequestValidate(t *testing.T) {
	require.NoError(t, (&UpdateRegistrationRequest{RegistrationID: 1, Status: RegistrationStatusAttended}).Validate())

	err := (&UpdateRegistrationRequest{RegistrationID: 1, Status: RegistrationStatusRegistered}).Validate()
	require.Error(t, err)
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestRegistrationStatusTransitions(t *testing.T) {
	assert.True(t, RegistrationStatusRegistered.CanTransitionTo(RegistrationStatusAttended))
	assert.True(t, RegistrationStatusRegistered.CanTransitionTo(RegistrationStatusAbsent))
	assert.False(t, RegistrationStatusAttended.CanTransitionTo(RegistrationStatusAbsent))
	assert.False(t, RegistrationStatusAbsent.CanTransitionTo(RegistrationStatusAttended))
	assert.False(t, RegistrationStatusRegistered.CanTransitionTo(RegistrationStatusRegistered))
}
