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

// EventRepo provides read access to live events. Events are only written
// through EventRequestRepo's approval transactions.
type EventRepo struct {
	DB *sql.DB
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{DB: db}
}

const eventColumns = `id, address, start_time, end_time, max_attendees, latitude,
	longitude, facility_id, organiser_id, state_id, district_id, created_at, updated_at`

// List returns every live event, soonest start first.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY start_time, id`, eventColumns)
	return r.collectMany(ctx, query)
}

// ListFuture returns events whose end time has not yet passed.
func (r *EventRepo) ListFuture(ctx context.Context) ([]model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE end_time > now() ORDER BY start_time, id`, eventColumns)
	return r.collectMany(ctx, query)
}

// GetByID retrieves a single event.
func (r *EventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	var out model.Event
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Event])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func (r *EventRepo) collectMany(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	var out []model.Event
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Event])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
