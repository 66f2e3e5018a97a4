package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// SessionRepo is the per-role session ledger: one table per role, keyed by
// refresh-token jti. It is the single truth for whether a refresh token is
// still live. The role parameter selects the table; table names come from
// the closed Role set, never from input.
type SessionRepo struct {
	DB *sql.DB
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{DB: db}
}

// Create inserts exactly one ledger row for a fresh login.
func (r *SessionRepo) Create(ctx context.Context, role model.Role, s model.Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (refresh_token_id, access_token_id, principal_id)
		VALUES ($1, $2, $3)`, role.SessionTable())
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, query, s.RefreshTokenID, s.AccessTokenID, s.PrincipalID)
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// Get looks up the ledger row for a refresh-token jti.
func (r *SessionRepo) Get(ctx context.Context, role model.Role, refreshTokenID uuid.UUID) (*model.Session, error) {
	query := fmt.Sprintf(`
		SELECT refresh_token_id, access_token_id, principal_id
		FROM %s WHERE refresh_token_id = $1`, role.SessionTable())

	var out model.Session
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, refreshTokenID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Session])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByPrincipal returns every live session for a principal.
func (r *SessionRepo) ListByPrincipal(ctx context.Context, role model.Role, principalID int64) ([]model.Session, error) {
	query := fmt.Sprintf(`
		SELECT refresh_token_id, access_token_id, principal_id
		FROM %s WHERE principal_id = $1`, role.SessionTable())

	var out []model.Session
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, principalID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Session])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Rotate replaces the token pair of one session in a single UPDATE keyed on
// the old refresh jti. There is no read-then-write split, so of two
// concurrent rotations of the same token at most one sees an affected row;
// the loser (and any later replay of the old jti) gets RefreshNoSession.
func (r *SessionRepo) Rotate(ctx context.Context, role model.Role, p model.RotateParams) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET refresh_token_id = $1, access_token_id = $2
		WHERE refresh_token_id = $3 AND principal_id = $4`, role.SessionTable())

	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx, query, p.NewRefreshTokenID, p.NewAccessTokenID, p.OldRefreshTokenID, p.PrincipalID)
		if execErr != nil {
			return execErr
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if affected == 0 {
		return apperrors.New(apperrors.ErrCodeRefreshNoSession, "session not found for refresh token")
	}
	return nil
}

// RevokeOne deletes the session matching the full (refresh, access,
// principal) triple. Used by per-device logout; the triple match stops a
// stolen refresh token from revoking a session it cannot also present the
// access token for.
func (r *SessionRepo) RevokeOne(ctx context.Context, role model.Role, s model.Session) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE refresh_token_id = $1 AND access_token_id = $2 AND principal_id = $3`, role.SessionTable())

	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx, query, s.RefreshTokenID, s.AccessTokenID, s.PrincipalID)
		if execErr != nil {
			return execErr
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if affected == 0 {
		return apperrors.New(apperrors.ErrCodeLogoutNoSession, "no session matches the presented token pair")
	}
	return nil
}

// RevokeAll deletes every session for a principal. Used by logout-all.
func (r *SessionRepo) RevokeAll(ctx context.Context, role model.Role, principalID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE principal_id = $1`, role.SessionTable())

	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, execErr := conn.Exec(ctx, query, principalID)
		if execErr != nil {
			return execErr
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return affected, nil
}

// Check reports whether a session with the exact triple exists.
func (r *SessionRepo) Check(ctx context.Context, role model.Role, s model.Session) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1 FROM %s
			WHERE refresh_token_id = $1 AND access_token_id = $2 AND principal_id = $3
		)`, role.SessionTable())

	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, s.RefreshTokenID, s.AccessTokenID, s.PrincipalID).Scan(&exists)
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return exists, nil
}
