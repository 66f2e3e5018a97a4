package model

import "time"

// RequestStatus is the lifecycle state of an event request. Requests start
// Pending and end terminally in Approved or Rejected.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Event is a live blood-donation event, materialised when a facility
// approves a new-event request and mutated when it approves a change
// request.
type Event struct {
	ID           int64     `db:"id"            json:"id"`
	Address      string    `db:"address"       json:"address"`
	StartTime    time.Time `db:"start_time"    json:"startTime"`
	EndTime      time.Time `db:"end_time"      json:"endTime"`
	MaxAttendees int       `db:"max_attendees" json:"maxAttendees"`
	Latitude     float64   `db:"latitude"      json:"latitude"`
	Longitude    float64   `db:"longitude"     json:"longitude"`
	FacilityID   int64     `db:"facility_id"   json:"facilityId"`
	OrganiserID  int64     `db:"organiser_id"  json:"organiserId"`
	StateID      int64     `db:"state_id"      json:"stateId"`
	DistrictID   int64     `db:"district_id"   json:"districtId"`
	CreatedAt    time.Time `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at"    json:"updatedAt"`
}

// NewEventRequest is an organiser's request for a brand-new event, pending
// approval by the referenced facility.
type NewEventRequest struct {
	ID              int64         `db:"id"               json:"id"`
	Address         string        `db:"address"          json:"address"`
	StartTime       time.Time     `db:"start_time"       json:"startTime"`
	EndTime         time.Time     `db:"end_time"         json:"endTime"`
	MaxAttendees    int           `db:"max_attendees"    json:"maxAttendees"`
	Latitude        float64       `db:"latitude"         json:"latitude"`
	Longitude       float64       `db:"longitude"        json:"longitude"`
	Status          RequestStatus `db:"status"           json:"status"`
	RejectionReason *string       `db:"rejection_reason" json:"rejectionReason,omitempty"`
	FacilityID      int64         `db:"facility_id"      json:"facilityId"`
	OrganiserID     int64         `db:"organiser_id"     json:"organiserId"`
	StateID         int64         `db:"state_id"         json:"stateId"`
	DistrictID      int64         `db:"district_id"      json:"districtId"`
	CreatedAt       time.Time     `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time     `db:"updated_at"       json:"updatedAt"`
}

// ChangeEventRequest amends an existing live event. It carries the full
// replacement field set plus the event it targets and the organiser's reason.
type ChangeEventRequest struct {
	ID              int64         `db:"id"               json:"id"`
	EventID         int64         `db:"event_id"         json:"eventId"`
	ChangeReason    string        `db:"change_reason"    json:"changeReason"`
	Address         string        `db:"address"          json:"address"`
	StartTime       time.Time     `db:"start_time"       json:"startTime"`
	EndTime         time.Time     `db:"end_time"         json:"endTime"`
	MaxAttendees    int           `db:"max_attendees"    json:"maxAttendees"`
	Latitude        float64       `db:"latitude"         json:"latitude"`
	Longitude       float64       `db:"longitude"        json:"longitude"`
	Status          RequestStatus `db:"status"           json:"status"`
	RejectionReason *string       `db:"rejection_reason" json:"rejectionReason,omitempty"`
	FacilityID      int64         `db:"facility_id"      json:"facilityId"`
	OrganiserID     int64         `db:"organiser_id"     json:"organiserId"`
	StateID         int64         `db:"state_id"         json:"stateId"`
	DistrictID      int64         `db:"district_id"      json:"districtId"`
	CreatedAt       time.Time     `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time     `db:"updated_at"       json:"updatedAt"`
}

// RequestParties carries the display attributes joined onto request listings
// so clients can render who is involved without extra lookups.
type RequestParties struct {
	FacilityName  string `db:"facility_name"  json:"facilityName"`
	OrganiserName string `db:"organiser_name" json:"organiserName"`
	StateName     string `db:"state_name"     json:"stateName"`
	DistrictName  string `db:"district_name"  json:"districtName"`
}

// NewEventRequestDetail is a new-event request joined with its parties.
type NewEventRequestDetail struct {
	NewEventRequest
	RequestParties
}

// ChangeEventRequestDetail is a change request joined with its parties.
type ChangeEventRequestDetail struct {
	ChangeEventRequest
	RequestParties
}
