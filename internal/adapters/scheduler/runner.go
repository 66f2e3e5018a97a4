// Package scheduler provides the adapter that runs the daily eligibility reset.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// EligibilityResetter resets expired donor cooldowns and reports how many
// donors were flipped back to eligible.
type EligibilityResetter interface {
	ResetExpired(ctx context.Context) (int, error)
}

// Runner fires the eligibility reset once per day at a fixed UTC hour.
type Runner struct {
	eligibility EligibilityResetter
	resetHour   int
	logger      *slog.Logger
	now         func() time.Time
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Eligibility EligibilityResetter
	// ResetHour is the UTC hour (0-23) at which the reset fires. Zero means midnight.
	ResetHour int
	Logger    *slog.Logger
	Now       func() time.Time
}

// NewRunner creates a new eligibility reset runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if err := validateRunnerOptions(&opts); err != nil {
		return nil, err
	}

	return &Runner{
		eligibility: opts.Eligibility,
		resetHour:   opts.ResetHour,
		logger:      opts.Logger,
		now:         opts.Now,
	}, nil
}

// validateRunnerOptions validates and sets defaults for RunnerOptions.
func validateRunnerOptions(opts *RunnerOptions) error {
	if opts.Eligibility == nil {
		return errors.New("eligibility service is required")
	}
	if opts.ResetHour < 0 || opts.ResetHour > 23 {
		return errors.New("reset hour must be between 0 and 23")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return nil
}

// Run blocks until ctx is cancelled, firing the eligibility reset at each
// daily boundary. Returns nil on clean cancellation.
func (r *Runner) Run(ctx context.Context) error {
	for {
		wait := r.nextFire().Sub(r.now().UTC())
		r.logger.InfoContext(ctx, "eligibility reset scheduled",
			slog.Duration("wait", wait),
			slog.Int("reset_hour_utc", r.resetHour))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-timer.C:
		}

		if _, err := r.eligibility.ResetExpired(ctx); err != nil {
			// Continue running despite errors; the next boundary retries.
			r.logger.ErrorContext(ctx, "eligibility reset failed", slog.Any("error", err))
		}
	}
}

// nextFire returns the next daily boundary strictly after now, in UTC.
func (r *Runner) nextFire() time.Time {
	now := r.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), r.resetHour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
