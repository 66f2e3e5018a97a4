package auth

import (
	"github.com/google/uuid"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

// Principal describes the authenticated actor of a request: who they are,
// which role space they belong to, and which access token instance proved
// it. It is built once by the auth pipeline and passed to handlers through
// the request context; the AccessTokenID is what logout matches against the
// session ledger.
type Principal struct {
	ID            int64
	Role          model.Role
	AccessTokenID uuid.UUID
}
