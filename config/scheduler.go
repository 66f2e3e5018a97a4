package config

// SchedulerConfig contains eligibility reset scheduler configuration.
type SchedulerConfig struct {
	// Enabled controls whether the in-process reset scheduler runs.
	// Disable it when an external cron drives the reset instead.
	Enabled bool `env:"SCHEDULER_ENABLED" envDefault:"true"`

	// ResetHourUTC is the UTC hour (0-23) at which expired donor
	// cooldowns are flipped back to eligible.
	ResetHourUTC int `env:"SCHEDULER_RESET_HOUR_UTC" envDefault:"0"`
}

// Sanitize applies guardrails to scheduler configuration values.
func (s *SchedulerConfig) Sanitize() {
	if s.ResetHourUTC < 0 || s.ResetHourUTC > 23 {
		s.ResetHourUTC = 0
	}
}
