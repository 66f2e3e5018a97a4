package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// DonationRepo provides read access to donation history.
type DonationRepo struct {
	DB *sql.DB
}

// NewDonationRepo creates a new DonationRepo.
func NewDonationRepo(db *sql.DB) *DonationRepo {
	return &DonationRepo{DB: db}
}

// ListByDonor returns a donor's donations, most recent first.
func (r *DonationRepo) ListByDonor(ctx context.Context, donorID int64) ([]model.DonationHistory, error) {
	query := `
		SELECT id, donor_id, event_id, created_at
		FROM donation_history
		WHERE donor_id = $1
		ORDER BY created_at DESC, id DESC`

	var out []model.DonationHistory
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, donorID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.DonationHistory])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
