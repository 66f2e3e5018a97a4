package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// GeoRepo reads the static reference tables: states, districts, blood types.
type GeoRepo struct {
	DB *sql.DB
}

// NewGeoRepo creates a new GeoRepo.
func NewGeoRepo(db *sql.DB) *GeoRepo {
	return &GeoRepo{DB: db}
}

// ListStates returns all states ordered by name.
func (r *GeoRepo) ListStates(ctx context.Context) ([]model.State, error) {
	return collectGeo[model.State](ctx, r.DB, `SELECT id, name FROM states ORDER BY name`)
}

// ListDistricts returns all districts ordered by name.
func (r *GeoRepo) ListDistricts(ctx context.Context) ([]model.District, error) {
	return collectGeo[model.District](ctx, r.DB, `SELECT id, name, state_id FROM districts ORDER BY name`)
}

// ListBloodTypes returns the blood-type reference set.
func (r *GeoRepo) ListBloodTypes(ctx context.Context) ([]model.BloodType, error) {
	return collectGeo[model.BloodType](ctx, r.DB, `SELECT id, name FROM blood_types ORDER BY id`)
}

func collectGeo[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	var out []T
	err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
