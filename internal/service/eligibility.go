package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bloodlink-my/bloodlink/internal/core"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

// CooldownPeriod is how long a donor stays ineligible after a donation.
const CooldownPeriod = 90 * 24 * time.Hour

// EligibilityServiceOptions groups dependencies for EligibilityService.
type EligibilityServiceOptions struct {
	Donors        core.DonorRepository
	Notifications core.NotificationRepository
	Logger        *slog.Logger
	Now           func() time.Time
}

// EligibilityService hosts the daily reset: donors whose cooldown has
// lapsed flip back to eligible and get told about it. The flip is one
// statement, so re-running on the same day is a no-op.
type EligibilityService struct {
	donors        core.DonorRepository
	notifications core.NotificationRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewEligibilityService constructs a new EligibilityService.
func NewEligibilityService(opts EligibilityServiceOptions) *EligibilityService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &EligibilityService{
		donors:        opts.Donors,
		notifications: opts.Notifications,
		logger:        logger,
		now:           now,
	}
}

// ResetExpired re-enables every donor whose most recent donation is older
// than the cooldown and enqueues one notification per re-enabled donor.
// Returns the number of donors flipped.
func (s *EligibilityService) ResetExpired(ctx context.Context) (int, error) {
	cutoff := s.now().UTC().Add(-CooldownPeriod)
	ids, err := s.donors.ResetExpiredCooldowns(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	redirect := "donation-history"
	if err := s.notifications.CreateBulk(ctx, model.RoleDonor, ids,
		"Your donation cooldown has ended. You are eligible to donate again", &redirect); err != nil {
		// The flip has already committed at this point.
		s.logger.WarnContext(ctx, "eligibility reset notifications failed",
			"donors", len(ids), "error", err)
	}
	s.logger.InfoContext(ctx, "eligibility reset complete", "donors", len(ids))
	return len(ids), nil
}
