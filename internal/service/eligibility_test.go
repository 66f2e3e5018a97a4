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

func newEligibilityService(t *testing.T, now time.Time) (*EligibilityService, *mocks.MockDonorRepository, *mocks.MockNotificationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	donors := mocks.NewMockDonorRepository(ctrl)
	notifications := mocks.NewMockNotificationRepository(ctrl)
	svc := NewEligibilityService(EligibilityServiceOptions{
		Donors:        donors,
		Notifications: notifications,
		Now:           func() time.Time { return now },
	})
	return svc, donors, notifications
}

func TestEligibilityService_ResetExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, donors, notifications := newEligibilityService(t, now)
	ctx := context.Background()

	donors.EXPECT().
		ResetExpiredCooldowns(ctx, now.Add(-CooldownPeriod)).
		Return([]int64{7, 8}, nil)
	notifications.EXPECT().
		CreateBulk(ctx, model.RoleDonor, []int64{7, 8}, gomock.Any(), gomock.Any()).
		Return(nil)

	n, err := svc.ResetExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEligibilityService_ResetExpired_NoneDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, donors, _ := newEligibilityService(t, now)
	ctx := context.Background()

	donors.EXPECT().
		ResetExpiredCooldowns(ctx, gomock.Any()).
		Return(nil, nil)

	n, err := svc.ResetExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEligibilityService_ResetExpired_NotifyFailureIsNotFatal(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, donors, notifications := newEligibilityService(t, now)
	ctx := context.Background()

	donors.EXPECT().
		ResetExpiredCooldowns(ctx, gomock.Any()).
		Return([]int64{7}, nil)
	notifications.EXPECT().
		CreateBulk(ctx, model.RoleDonor, []int64{7}, gomock.Any(), gomock.Any()).
		Return(apperrors.Internal("queue unavailable"))

	n, err := svc.ResetExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
