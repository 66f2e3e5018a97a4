package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// DonorRepo provides database operations for donor principals.
type DonorRepo struct {
	DB *sql.DB
}

// NewDonorRepo creates a new DonorRepo.
func NewDonorRepo(db *sql.DB) *DonorRepo {
	return &DonorRepo{DB: db}
}

const donorColumns = `id, ic_number, name, email, phone, password_hash, blood_type_id,
	state_id, district_id, eligibility, created_at, updated_at`

// Create inserts a new donor. Duplicate natural keys (ic_number, email,
// phone) surface as Conflict errors attributed to the violated column.
func (r *DonorRepo) Create(ctx context.Context, p model.CreateDonorParams) (*model.Donor, error) {
	query := fmt.Sprintf(`
		INSERT INTO donors (ic_number, name, email, phone, password_hash, blood_type_id, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, donorColumns)

	var out model.Donor
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query,
			strings.TrimSpace(p.ICNumber), p.Name, p.Email, p.Phone, p.PasswordHash,
			p.BloodTypeID, p.StateID, p.DistrictID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Donor])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a donor by id.
func (r *DonorRepo) GetByID(ctx context.Context, id int64) (*model.Donor, error) {
	query := fmt.Sprintf(`SELECT %s FROM donors WHERE id = $1`, donorColumns)
	return r.getByQuery(ctx, query, id)
}

// GetByICNumber retrieves a donor by the IC-number natural key.
func (r *DonorRepo) GetByICNumber(ctx context.Context, ic string) (*model.Donor, error) {
	query := fmt.Sprintf(`SELECT %s FROM donors WHERE ic_number = $1`, donorColumns)
	return r.getByQuery(ctx, query, strings.TrimSpace(ic))
}

// Update applies the present fields of p to the donor row.
func (r *DonorRepo) Update(ctx context.Context, id int64, p model.UpdateDonorParams) (*model.Donor, error) {
	setClause, args := r.buildUpdateClause(p)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE donors SET %s WHERE id = $%d RETURNING %s`,
		setClause, len(args), donorColumns)

	var out model.Donor
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Donor])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func (r *DonorRepo) buildUpdateClause(p model.UpdateDonorParams) (string, []any) {
	setParts := make([]string, 0, 9)
	args := make([]any, 0, 9)
	add := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, column+" = $"+strconv.Itoa(len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.BloodTypeID != nil {
		add("blood_type_id", *p.BloodTypeID)
	}
	if p.StateID != nil {
		add("state_id", *p.StateID)
	}
	if p.DistrictID != nil {
		add("district_id", *p.DistrictID)
	}
	if p.PasswordHash != nil {
		add("password_hash", *p.PasswordHash)
	}
	if p.Eligibility != nil {
		add("eligibility", *p.Eligibility)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, "updated_at = now()")
	return strings.Join(setParts, ", "), args
}

// ResetExpiredCooldowns flips every donor back to Eligible whose cooldown
// has lapsed: currently Ineligible and whose most recent donation is older
// than the cutoff. Donors marked IneligibleCondition are never touched. The
// single-statement form makes the daily job idempotent; a second run the
// same day matches no rows.
func (r *DonorRepo) ResetExpiredCooldowns(ctx context.Context, cutoff time.Time) ([]int64, error) {
	query := `
		UPDATE donors
		SET eligibility = 'eligible', updated_at = now()
		WHERE eligibility = 'ineligible'
		  AND NOT EXISTS (
			SELECT 1 FROM donation_history dh
			WHERE dh.donor_id = donors.id AND dh.created_at > $1
		  )
		RETURNING id`

	var ids []int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, cutoff)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		ids, collectErr = pgx.CollectRows(rows, pgx.RowTo[int64])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return ids, nil
}

func (r *DonorRepo) getByQuery(ctx context.Context, query string, arg any) (*model.Donor, error) {
	var out model.Donor
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, arg)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Donor])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
