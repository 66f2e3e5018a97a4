package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// PrincipalRepo is the parametric slice of the four principal tables used by
// the auth flows: credential lookup by natural key or id, and password
// writes. It collapses what would otherwise be four near-identical
// login/refresh/logout code paths into one. Role-specific profile CRUD
// lives in the per-role repos.
type PrincipalRepo struct {
	DB *sql.DB
}

// NewPrincipalRepo creates a new PrincipalRepo.
func NewPrincipalRepo(db *sql.DB) *PrincipalRepo {
	return &PrincipalRepo{DB: db}
}

// GetCredentials fetches id and password hash by the role's natural key
// (donor IC number, everyone else's email). A missing principal surfaces as
// LoginUnknownPrincipal so callers need not distinguish not-found
// themselves.
func (r *PrincipalRepo) GetCredentials(ctx context.Context, role model.Role, naturalKey string) (*model.Credentials, error) {
	query := fmt.Sprintf(`SELECT id, password_hash FROM %s WHERE %s = $1`,
		role.Table(), role.NaturalKeyColumn())

	creds, err := r.credentialsQuery(ctx, query, naturalKey)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.New(apperrors.ErrCodeLoginUnknownPrincipal, "unknown "+role.NaturalKeyColumn())
		}
		return nil, err
	}
	return creds, nil
}

// GetCredentialsByID fetches credentials by principal id; used by the
// current-password check on profile updates.
func (r *PrincipalRepo) GetCredentialsByID(ctx context.Context, role model.Role, id int64) (*model.Credentials, error) {
	query := fmt.Sprintf(`SELECT id, password_hash FROM %s WHERE id = $1`, role.Table())
	return r.credentialsQuery(ctx, query, id)
}

func (r *PrincipalRepo) credentialsQuery(ctx context.Context, query string, arg any) (*model.Credentials, error) {
	var out model.Credentials
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, arg)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Credentials])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
