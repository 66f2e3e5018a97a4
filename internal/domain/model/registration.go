package model

import "time"

// RegistrationStatus is the attendance state of a donor's event
// registration. Registered is the only non-terminal state.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusAbsent     RegistrationStatus = "absent"
	RegistrationStatusAttended   RegistrationStatus = "attended"
)

// CanTransitionTo reports whether s may move to next. Registered may move to
// Absent or Attended; Absent and Attended are terminal.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	if s != RegistrationStatusRegistered {
		return false
	}
	return next == RegistrationStatusAbsent || next == RegistrationStatusAttended
}

// Registration is a donor's opt-in to a live event.
type Registration struct {
	ID           int64              `db:"id"            json:"id"`
	EventID      int64              `db:"event_id"      json:"eventId"`
	DonorID      int64              `db:"donor_id"      json:"donorId"`
	Status       RegistrationStatus `db:"status"        json:"status"`
	RegisteredAt time.Time          `db:"registered_at" json:"registeredAt"`
}

// DonationHistory records one completed donation. Exactly one row exists per
// registration that reached Attended.
type DonationHistory struct {
	ID        int64     `db:"id"         json:"id"`
	DonorID   int64     `db:"donor_id"   json:"donorId"`
	EventID   int64     `db:"event_id"   json:"eventId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
