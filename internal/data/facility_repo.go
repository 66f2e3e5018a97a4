package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// FacilityRepo provides database operations for facility principals.
type FacilityRepo struct {
	DB *sql.DB
}

// NewFacilityRepo creates a new FacilityRepo.
func NewFacilityRepo(db *sql.DB) *FacilityRepo {
	return &FacilityRepo{DB: db}
}

const facilityColumns = `id, email, name, phone, address, password_hash,
	state_id, district_id, created_at, updated_at`

func (r *FacilityRepo) Create(ctx context.Context, p model.CreateFacilityParams) (*model.Facility, error) {
	query := fmt.Sprintf(`
		INSERT INTO facilities (email, name, phone, address, password_hash, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, facilityColumns)
	return r.collectOne(ctx, query,
		p.Email, p.Name, p.Phone, p.Address, p.PasswordHash, p.StateID, p.DistrictID)
}

func (r *FacilityRepo) GetByID(ctx context.Context, id int64) (*model.Facility, error) {
	query := fmt.Sprintf(`SELECT %s FROM facilities WHERE id = $1`, facilityColumns)
	return r.collectOne(ctx, query, id)
}

// List returns every facility, ordered by name. Used by the public
// facility directory.
func (r *FacilityRepo) List(ctx context.Context) ([]model.Facility, error) {
	query := fmt.Sprintf(`SELECT %s FROM facilities ORDER BY name`, facilityColumns)

	var out []model.Facility
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Facility])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

func (r *FacilityRepo) Update(ctx context.Context, id int64, p model.UpdateFacilityParams) (*model.Facility, error) {
	setParts := make([]string, 0, 8)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, column+" = $"+strconv.Itoa(len(args)))
	}

	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Address != nil {
		add("address", *p.Address)
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

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE facilities SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args), facilityColumns)
	return r.collectOne(ctx, query, args...)
}

func (r *FacilityRepo) collectOne(ctx context.Context, query string, args ...any) (*model.Facility, error) {
	var out model.Facility
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Facility])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
