package model

import "github.com/google/uuid"

// Session is one row of a per-role session ledger. The refresh-token jti is
// the primary key; the row is the sole authority for whether the token pair
// is still live. Rotation updates the row in place so a replayed
// refresh-token jti no longer resolves.
type Session struct {
	RefreshTokenID uuid.UUID `db:"refresh_token_id"`
	AccessTokenID  uuid.UUID `db:"access_token_id"`
	PrincipalID    int64     `db:"principal_id"`
}
