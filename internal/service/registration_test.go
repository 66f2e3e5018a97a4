package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
	"github.com/bloodlink-my/bloodlink/internal/mocks"
)

type registrationMocks struct {
	registrations *mocks.MockRegistrationRepository
	events        *mocks.MockEventRepository
	donors        *mocks.MockDonorRepository
	donations     *mocks.MockDonationRepository
}

var registrationTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRegistrationService(t *testing.T) (*RegistrationService, registrationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := registrationMocks{
		registrations: mocks.NewMockRegistrationRepository(ctrl),
		events:        mocks.NewMockEventRepository(ctrl),
		donors:        mocks.NewMockDonorRepository(ctrl),
		donations:     mocks.NewMockDonationRepository(ctrl),
	}
	svc := NewRegistrationService(RegistrationServiceOptions{
		Registrations: m.registrations,
		Events:        m.events,
		Donors:        m.donors,
		Donations:     m.donations,
		Now:           func() time.Time { return registrationTestNow },
	})
	return svc, m
}

func TestRegistrationService_Register(t *testing.T) {
	svc, m := newRegistrationService(t)
	ctx := context.Background()

	m.donors.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&model.Donor{ID: 7, Eligibility: model.EligibilityEligible}, nil)
	m.events.EXPECT().
		GetByID(ctx, int64(3)).
		Return(&model.Event{ID: 3, StartTime: registrationTestNow.Add(24 * time.Hour)}, nil)
	m.registrations.EXPECT().
		Create(ctx, int64(3), int64(7)).
		Return(&model.Registration{ID: 1, EventID: 3, DonorID: 7, Status: model.RegistrationStatusRegistered}, nil)

	reg, err := svc.Register(ctx, 7, &model.RegisterForEventRequest{EventID: 3})
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationStatusRegistered, reg.Status)
}

func TestRegistrationService_Register_IneligibleDonor(t *testing.T) {
	tests := []struct {
		name        string
		eligibility model.Eligibility
	}{
		{"cooldown", model.EligibilityIneligible},
		{"medical condition", model.EligibilityIneligibleCondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRegistrationService(t)
			ctx := context.Background()

			m.donors.EXPECT().
				GetByID(ctx, int64(7)).
				Return(&model.Donor{ID: 7, Eligibility: tt.eligibility}, nil)

			_, err := svc.Register(ctx, 7, &model.RegisterForEventRequest{EventID: 3})
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestRegistrationService_Register_EventAlreadyStarted(t *testing.T) {
	svc, m := newRegistrationService(t)
	ctx := context.Background()

	m.donors.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&model.Donor{ID: 7, Eligibility: model.EligibilityEligible}, nil)
	m.events.EXPECT().
		GetByID(ctx, int64(3)).
		Return(&model.Event{ID: 3, StartTime: registrationTestNow.Add(-time.Hour)}, nil)

	_, err := svc.Register(ctx, 7, &model.RegisterForEventRequest{EventID: 3})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegistrationService_UpdateStatus_Attended(t *testing.T) {
	svc, m := newRegistrationService(t)
	ctx := context.Background()

	m.registrations.EXPECT().
		GetByID(ctx, int64(10)).
		Return(&model.Registration{ID: 10, EventID: 3, DonorID: 7, Status: model.RegistrationStatusRegistered}, nil)
	m.events.EXPECT().
		GetByID(ctx, int64(3)).
		Return(&model.Event{ID: 3, FacilityID: 5}, nil)
	m.registrations.EXPECT().
		MarkAttended(ctx, int64(10), gomock.Any(), gomock.Any()).
		Return(&model.Registration{ID: 10, Status: model.RegistrationStatusAttended}, nil)

	reg, err := svc.UpdateStatus(ctx, 5, &model.UpdateRegistrationRequest{
		RegistrationID: 10,
		Status:         model.RegistrationStatusAttended,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationStatusAttended, reg.Status)
}

func TestRegistrationService_UpdateStatus_Absent(t *testing.T) {
	svc, m := newRegistrationService(t)
	ctx := context.Background()

	m.registrations.EXPECT().
		GetByID(ctx, int64(10)).
		Return(&model.Registration{ID: 10, EventID: 3, Status: model.RegistrationStatusRegistered}, nil)
	m.events.EXPECT().
		GetByID(ctx, int64(3)).
		Return(&model.Event{ID: 3, FacilityID: 5}, nil)
	m.registrations.EXPECT().
		MarkAbsent(ctx, int64(10), gomock.Any(), gomock.Any()).
		Return(&model.Registration{ID: 10, Status: model.RegistrationStatusAbsent}, nil)

	reg, err := svc.UpdateStatus(ctx, 5, &model.UpdateRegistrationRequest{
		RegistrationID: 10,
		Status:         model.RegistrationStatusAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationStatusAbsent, reg.Status)
}

func TestRegistrationService_UpdateStatus_WrongFacility(t *testing.T) {
	svc, m := newRegistrationService(t)
	ctx := context.Background()

	m.registrations.EXPECT().
		GetByID(ctx, int64(10)).
		Return(&model.Registration{ID: 10, EventID: 3, Status: model.RegistrationStatusRegistered}, nil)
	m.events.EXPECT().
		GetByID(ctx, int64(3)).
		Return(&model.Event{ID: 3, FacilityID: 99}, nil)

	_, err := svc.UpdateStatus(ctx, 5, &model.UpdateRegistrationRequest{
		RegistrationID: 10,
		Status:         model.RegistrationStatusAttended,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestRegistrationService_UpdateStatus_TerminalIsImmutable(t *testing.T) {
	for _, terminal := range []model.RegistrationStatus{
		model.RegistrationStatusAbsent,
		model.RegistrationStatusAttended,
	} {
		t.Run(string(terminal), func(t *testing.T) {
			svc, m := newRegistrationService(t)
			ctx := context.Background()

			m.registrations.EXPECT().
				GetByID(ctx, int64(10)).
				Return(&model.Registration{ID: 10, EventID: 3, Status: terminal}, nil)
			m.events.EXPECT().
				GetByID(ctx, int64(3)).
				Return(&model.Event{ID: 3, FacilityID: 5}, nil)

			_, err := svc.UpdateStatus(ctx, 5, &model.UpdateRegistrationRequest{
				RegistrationID: 10,
				Status:         model.RegistrationStatusAttended,
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsConflict(err))
		})
	}
}

func TestRegistrationService_ListByEvent_Scoping(t *testing.T) {
	tests := []struct {
		name        string
		role        model.Role
		principalID int64
		wantErr     bool
	}{
		{"admin sees any event", model.RoleAdmin, 1, false},
		{"hosting facility", model.RoleFacility, 5, false},
		{"other facility", model.RoleFacility, 6, true},
		{"owning organiser", model.RoleOrganiser, 9, false},
		{"other organiser", model.RoleOrganiser, 10, true},
		{"donor", model.RoleDonor, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRegistrationService(t)
			ctx := context.Background()

			m.events.EXPECT().
				GetByID(ctx, int64(3)).
				Return(&model.Event{ID: 3, FacilityID: 5, OrganiserID: 9}, nil)
			if !tt.wantErr {
				m.registrations.EXPECT().
					ListByEvent(ctx, int64(3)).
					Return([]model.Registration{}, nil)
			}

			_, err := svc.ListByEvent(ctx, tt.role, tt.principalID, 3)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsForbidden(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
