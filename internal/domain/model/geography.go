package model

// State is a read-only reference row for a state.
type State struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

// District is a read-only reference row; each district belongs to a state.
type District struct {
	ID      int64  `db:"id"       json:"id"`
	Name    string `db:"name"     json:"name"`
	StateID int64  `db:"state_id" json:"stateId"`
}

// BloodType is one entry of the enumerated read-only blood-type set.
type BloodType struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}
