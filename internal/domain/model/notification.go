package model

import "time"

// Notification is one row of a per-role notification queue. Redirect is an
// optional tag the client uses to deep-link ("event-registrations",
// "donation-history", ...).
type Notification struct {
	ID          int64     `db:"id"           json:"id"`
	Description string    `db:"description"  json:"description"`
	Redirect    *string   `db:"redirect"     json:"redirect,omitempty"`
	Read        bool      `db:"read"         json:"read"`
	PrincipalID int64     `db:"principal_id" json:"principalId"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
}
