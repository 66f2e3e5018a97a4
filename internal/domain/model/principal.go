package model

import "time"

// Eligibility is a donor's current medical permission to donate.
type Eligibility string

const (
	// EligibilityEligible means the donor may register for events and donate.
	EligibilityEligible Eligibility = "eligible"
	// EligibilityIneligible means the donor is inside the post-donation
	// cooldown window. The daily reset job flips this back after 90 days.
	EligibilityIneligible Eligibility = "ineligible"
	// EligibilityIneligibleCondition marks donors excluded for a medical
	// condition; the reset job never touches these.
	EligibilityIneligibleCondition Eligibility = "ineligible_condition"
)

// Donor is the donor-role principal. ICNumber is the natural key.
type Donor struct {
	ID           int64       `db:"id"            json:"id"`
	ICNumber     string      `db:"ic_number"     json:"icNumber"`
	Name         string      `db:"name"          json:"name"`
	Email        string      `db:"email"         json:"email"`
	Phone        string      `db:"phone"         json:"phone"`
	PasswordHash string      `db:"password_hash" json:"-"`
	BloodTypeID  int64       `db:"blood_type_id" json:"bloodTypeId"`
	StateID      int64       `db:"state_id"      json:"stateId"`
	DistrictID   int64       `db:"district_id"   json:"districtId"`
	Eligibility  Eligibility `db:"eligibility"   json:"eligibility"`
	CreatedAt    time.Time   `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at"    json:"updatedAt"`
}

// Facility is a blood-collection facility principal. Email is the natural key.
type Facility struct {
	ID           int64     `db:"id"            json:"id"`
	Email        string    `db:"email"         json:"email"`
	Name         string    `db:"name"          json:"name"`
	Phone        string    `db:"phone"         json:"phone"`
	Address      string    `db:"address"       json:"address"`
	PasswordHash string    `db:"password_hash" json:"-"`
	StateID      int64     `db:"state_id"      json:"stateId"`
	DistrictID   int64     `db:"district_id"   json:"districtId"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

// Organiser is an event-organiser principal. Email is the natural key.
type Organiser struct {
	ID           int64     `db:"id"            json:"id"`
	Email        string    `db:"email"         json:"email"`
	Name         string    `db:"name"          json:"name"`
	Phone        string    `db:"phone"         json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

// Admin is an administrator principal. Email is the natural key.
type Admin struct {
	ID           int64     `db:"id"            json:"id"`
	Email        string    `db:"email"         json:"email"`
	Name         string    `db:"name"          json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

// Credentials is the narrow slice of a principal row needed by the login and
// password-change paths, fetched parametrically by role + natural key.
type Credentials struct {
	ID           int64  `db:"id"`
	PasswordHash string `db:"password_hash"`
}
