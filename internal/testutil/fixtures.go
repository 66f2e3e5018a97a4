package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"
)

// Geo holds the reference-table IDs a fixture principal needs.
type Geo struct {
	StateID     int64
	DistrictID  int64
	BloodTypeID int64
}

var fixtureSeq atomic.Int64

// uniq returns a process-unique suffix so fixture rows never collide on
// the unique ic_number/email/phone constraints.
func uniq() int64 {
	return fixtureSeq.Add(1)
}

// SeedGeo inserts one state, district, and blood type for fixtures to
// reference.
func SeedGeo(t TestingTB, db *sql.DB) Geo {
	t.Helper()

	var g Geo
	if err := db.QueryRow(
		`INSERT INTO states (name) VALUES ($1) RETURNING id`,
		fmt.Sprintf("Selangor %d", uniq()),
	).Scan(&g.StateID); err != nil {
		t.Fatalf("seed state: %v", err)
	}
	if err := db.QueryRow(
		`INSERT INTO districts (name, state_id) VALUES ($1, $2) RETURNING id`,
		fmt.Sprintf("Petaling %d", uniq()), g.StateID,
	).Scan(&g.DistrictID); err != nil {
		t.Fatalf("seed district: %v", err)
	}
	if err := db.QueryRow(
		`INSERT INTO blood_types (name) VALUES ($1) RETURNING id`,
		fmt.Sprintf("O+%d", uniq()),
	).Scan(&g.BloodTypeID); err != nil {
		t.Fatalf("seed blood type: %v", err)
	}
	return g
}

// InsertDonor inserts a donor row with unique natural keys and returns its id.
func InsertDonor(t TestingTB, db *sql.DB, g Geo) int64 {
	t.Helper()

	n := uniq()
	var id int64
	err := db.QueryRow(`
		INSERT INTO donors (ic_number, name, email, phone, password_hash, blood_type_id, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		fmt.Sprintf("9001%08d", n),
		fmt.Sprintf("Donor %d", n),
		fmt.Sprintf("donor%d@example.com", n),
		fmt.Sprintf("+6012%07d", n),
		"x",
		g.BloodTypeID, g.StateID, g.DistrictID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert donor: %v", err)
	}
	return id
}

// SetDonorEligibility updates a donor's eligibility directly.
func SetDonorEligibility(t TestingTB, db *sql.DB, donorID int64, eligibility string) {
	t.Helper()
	if _, err := db.Exec(`UPDATE donors SET eligibility = $1 WHERE id = $2`, eligibility, donorID); err != nil {
		t.Fatalf("set donor eligibility: %v", err)
	}
}

// InsertFacility inserts a facility row and returns its id.
func InsertFacility(t TestingTB, db *sql.DB, g Geo) int64 {
	t.Helper()

	n := uniq()
	var id int64
	err := db.QueryRow(`
		INSERT INTO facilities (email, name, phone, address, password_hash, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		fmt.Sprintf("facility%d@example.com", n),
		fmt.Sprintf("Facility %d", n),
		fmt.Sprintf("+603%07d", n),
		"1 Jalan Hospital",
		"x",
		g.StateID, g.DistrictID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert facility: %v", err)
	}
	return id
}

// InsertOrganiser inserts an organiser row and returns its id.
func InsertOrganiser(t TestingTB, db *sql.DB) int64 {
	t.Helper()

	n := uniq()
	var id int64
	err := db.QueryRow(`
		INSERT INTO organisers (email, name, phone, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		fmt.Sprintf("organiser%d@example.com", n),
		fmt.Sprintf("Organiser %d", n),
		fmt.Sprintf("+6013%07d", n),
		"x",
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert organiser: %v", err)
	}
	return id
}

// InsertAdmin inserts an admin row and returns its id.
func InsertAdmin(t TestingTB, db *sql.DB) int64 {
	t.Helper()

	n := uniq()
	var id int64
	err := db.QueryRow(`
		INSERT INTO admins (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`,
		fmt.Sprintf("admin%d@example.com", n),
		fmt.Sprintf("Admin %d", n),
		"x",
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert admin: %v", err)
	}
	return id
}

// EventFixture controls the adjustable parts of an event row.
type EventFixture struct {
	FacilityID   int64
	OrganiserID  int64
	Geo          Geo
	StartTime    time.Time
	EndTime      time.Time
	MaxAttendees int
}

// InsertEvent inserts an event row and returns its id. Zero times default
// to a future event starting tomorrow.
func InsertEvent(t TestingTB, db *sql.DB, f EventFixture) int64 {
	t.Helper()

	if f.StartTime.IsZero() {
		f.StartTime = time.Now().Add(24 * time.Hour)
	}
	if f.EndTime.IsZero() {
		f.EndTime = f.StartTime.Add(8 * time.Hour)
	}
	if f.MaxAttendees == 0 {
		f.MaxAttendees = 100
	}

	var id int64
	err := db.QueryRow(`
		INSERT INTO events (address, start_time, end_time, max_attendees, latitude, longitude, facility_id, organiser_id, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		"Dewan Komuniti", f.StartTime, f.EndTime, f.MaxAttendees, 3.0738, 101.5183,
		f.FacilityID, f.OrganiserID, f.Geo.StateID, f.Geo.DistrictID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}
	return id
}

// InsertDonation inserts a donation_history row at the given time.
func InsertDonation(t TestingTB, db *sql.DB, donorID, eventID int64, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO donation_history (donor_id, event_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		donorID, eventID, createdAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert donation: %v", err)
	}
	return id
}
