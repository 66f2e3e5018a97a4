package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// EventRequestRepo manages new-event and change-event requests and the
// approval transactions that materialise or amend live events. Requests are
// immutable once terminal: every resolution runs a status-guarded UPDATE so
// a second resolver loses the race cleanly instead of overwriting.
type EventRequestRepo struct {
	DB *sql.DB
}

// NewEventRequestRepo creates a new EventRequestRepo.
func NewEventRequestRepo(db *sql.DB) *EventRequestRepo {
	return &EventRequestRepo{DB: db}
}

const newRequestColumns = `id, address, start_time, end_time, max_attendees, latitude,
	longitude, status, rejection_reason, facility_id, organiser_id, state_id,
	district_id, created_at, updated_at`

const changeRequestColumns = `id, event_id, change_reason, address, start_time, end_time,
	max_attendees, latitude, longitude, status, rejection_reason, facility_id,
	organiser_id, state_id, district_id, created_at, updated_at`

// partyJoin joins the four party tables onto a request alias r.
const partyJoin = `
	JOIN facilities f ON f.id = r.facility_id
	JOIN organisers o ON o.id = r.organiser_id
	JOIN states s ON s.id = r.state_id
	JOIN districts d ON d.id = r.district_id`

const partyColumns = `f.name AS facility_name, o.name AS organiser_name,
	s.name AS state_name, d.name AS district_name`

// CreateNew inserts a pending new-event request.
func (r *EventRequestRepo) CreateNew(ctx context.Context, p model.CreateNewRequestParams) (*model.NewEventRequest, error) {
	query := fmt.Sprintf(`
		INSERT INTO new_event_requests
			(address, start_time, end_time, max_attendees, latitude, longitude,
			 facility_id, organiser_id, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, newRequestColumns)

	var out model.NewEventRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query,
			p.Address, p.StartTime, p.EndTime, p.MaxAttendees, p.Latitude, p.Longitude,
			p.FacilityID, p.OrganiserID, p.StateID, p.DistrictID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewEventRequest])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// CreateChange inserts a pending change-event request.
func (r *EventRequestRepo) CreateChange(ctx context.Context, p model.CreateChangeRequestParams) (*model.ChangeEventRequest, error) {
	query := fmt.Sprintf(`
		INSERT INTO change_event_requests
			(event_id, change_reason, address, start_time, end_time, max_attendees,
			 latitude, longitude, facility_id, organiser_id, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`, changeRequestColumns)

	var out model.ChangeEventRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query,
			p.EventID, p.ChangeReason, p.Address, p.StartTime, p.EndTime, p.MaxAttendees,
			p.Latitude, p.Longitude, p.FacilityID, p.OrganiserID, p.StateID, p.DistrictID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ChangeEventRequest])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetNewByID retrieves a new-event request.
func (r *EventRequestRepo) GetNewByID(ctx context.Context, id int64) (*model.NewEventRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM new_event_requests WHERE id = $1`, newRequestColumns)

	var out model.NewEventRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewEventRequest])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetChangeByID retrieves a change-event request.
func (r *EventRequestRepo) GetChangeByID(ctx context.Context, id int64) (*model.ChangeEventRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM change_event_requests WHERE id = $1`, changeRequestColumns)

	var out model.ChangeEventRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ChangeEventRequest])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func filterClause(f model.RequestFilter) (string, []any) {
	switch {
	case f.OrganiserID != 0:
		return "WHERE r.organiser_id = $1", []any{f.OrganiserID}
	case f.FacilityID != 0:
		return "WHERE r.facility_id = $1", []any{f.FacilityID}
	default:
		return "", nil
	}
}

// ListNew returns new-event requests joined with their parties, newest first.
func (r *EventRequestRepo) ListNew(ctx context.Context, filter model.RequestFilter) ([]model.NewEventRequestDetail, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM new_event_requests r %s
		%s
		ORDER BY r.created_at DESC, r.id DESC`,
		prefixColumns("r", newRequestColumns), partyColumns, partyJoin, where)

	var out []model.NewEventRequestDetail
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.NewEventRequestDetail])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// ListChange returns change-event requests joined with their parties, newest first.
func (r *EventRequestRepo) ListChange(ctx context.Context, filter model.RequestFilter) ([]model.ChangeEventRequestDetail, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM change_event_requests r %s
		%s
		ORDER BY r.created_at DESC, r.id DESC`,
		prefixColumns("r", changeRequestColumns), partyColumns, partyJoin, where)

	var out []model.ChangeEventRequestDetail
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.ChangeEventRequestDetail])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// ApproveNew flips a pending new-event request to approved and materialises
// the live event, in one transaction. Losing the pending guard maps to
// NotFound when no such request exists and Conflict when it was already
// resolved.
func (r *EventRequestRepo) ApproveNew(ctx context.Context, requestID, facilityID int64) (*model.NewEventRequest, *model.Event, error) {
	approve := fmt.Sprintf(`
		UPDATE new_event_requests
		SET status = 'approved', updated_at = now()
		WHERE id = $1 AND facility_id = $2 AND status = 'pending'
		RETURNING %s`, newRequestColumns)
	materialise := fmt.Sprintf(`
		INSERT INTO events
			(address, start_time, end_time, max_attendees, latitude, longitude,
			 facility_id, organiser_id, state_id, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, eventColumns)

	var req model.NewEventRequest
	var event model.Event
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, queryErr := tx.Query(ctx, approve, requestID, facilityID)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		req, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewEventRequest])
		if collectErr != nil {
			return r.classifyGuardMiss(ctx, tx, "new_event_requests", requestID, facilityID, collectErr)
		}

		rows, queryErr = tx.Query(ctx, materialise,
			req.Address, req.StartTime, req.EndTime, req.MaxAttendees, req.Latitude,
			req.Longitude, req.FacilityID, req.OrganiserID, req.StateID, req.DistrictID)
		if queryErr != nil {
			return queryErr
		}
		event, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Event])
		return collectErr
	}})
	if err != nil {
		return nil, nil, apperrors.MapDBError(err)
	}
	return &req, &event, nil
}

// ApproveChange flips a pending change request to approved and applies its
// replacement fields to the target event, in one transaction.
func (r *EventRequestRepo) ApproveChange(ctx context.Context, requestID, facilityID int64) (*model.ChangeEventRequest, *model.Event, error) {
	approve := fmt.Sprintf(`
		UPDATE change_event_requests
		SET status = 'approved', updated_at = now()
		WHERE id = $1 AND facility_id = $2 AND status = 'pending'
		RETURNING %s`, changeRequestColumns)
	apply := fmt.Sprintf(`
		UPDATE events
		SET address = $1, start_time = $2, end_time = $3, max_attendees = $4,
			latitude = $5, longitude = $6, state_id = $7, district_id = $8,
			updated_at = now()
		WHERE id = $9
		RETURNING %s`, eventColumns)

	var req model.ChangeEventRequest
	var event model.Event
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, queryErr := tx.Query(ctx, approve, requestID, facilityID)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		req, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ChangeEventRequest])
		if collectErr != nil {
			return r.classifyGuardMiss(ctx, tx, "change_event_requests", requestID, facilityID, collectErr)
		}

		rows, queryErr = tx.Query(ctx, apply,
			req.Address, req.StartTime, req.EndTime, req.MaxAttendees, req.Latitude,
			req.Longitude, req.StateID, req.DistrictID, req.EventID)
		if queryErr != nil {
			return queryErr
		}
		event, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Event])
		return collectErr
	}})
	if err != nil {
		return nil, nil, apperrors.MapDBError(err)
	}
	return &req, &event, nil
}

// RejectNew flips a pending new-event request to rejected with the given
// reason.
func (r *EventRequestRepo) RejectNew(ctx context.Context, requestID, facilityID int64, reason string) (*model.NewEventRequest, error) {
	query := fmt.Sprintf(`
		UPDATE new_event_requests
		SET status = 'rejected', rejection_reason = $3, updated_at = now()
		WHERE id = $1 AND facility_id = $2 AND status = 'pending'
		RETURNING %s`, newRequestColumns)

	var out model.NewEventRequest
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, queryErr := tx.Query(ctx, query, requestID, facilityID, reason)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewEventRequest])
		if collectErr != nil {
			return r.classifyGuardMiss(ctx, tx, "new_event_requests", requestID, facilityID, collectErr)
		}
		return nil
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// RejectChange flips a pending change request to rejected with the given
// reason.
func (r *EventRequestRepo) RejectChange(ctx context.Context, requestID, facilityID int64, reason string) (*model.ChangeEventRequest, error) {
	query := fmt.Sprintf(`
		UPDATE change_event_requests
		SET status = 'rejected', rejection_reason = $3, updated_at = now()
		WHERE id = $1 AND facility_id = $2 AND status = 'pending'
		RETURNING %s`, changeRequestColumns)

	var out model.ChangeEventRequest
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, queryErr := tx.Query(ctx, query, requestID, facilityID, reason)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ChangeEventRequest])
		if collectErr != nil {
			return r.classifyGuardMiss(ctx, tx, "change_event_requests", requestID, facilityID, collectErr)
		}
		return nil
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// classifyGuardMiss turns a zero-row guarded update into the right caller
// error: NotFound when the request does not exist, Forbidden when it belongs
// to another facility, Conflict when it is already terminal.
func (r *EventRequestRepo) classifyGuardMiss(ctx context.Context, tx pgx.Tx, table string, requestID, facilityID int64, cause error) error {
	if !errors.Is(cause, pgx.ErrNoRows) {
		return cause
	}
	query := fmt.Sprintf(`SELECT facility_id, status FROM %s WHERE id = $1`, table)
	var rowFacilityID int64
	var status string
	scanErr := tx.QueryRow(ctx, query, requestID).Scan(&rowFacilityID, &status)
	if errors.Is(scanErr, pgx.ErrNoRows) {
		return apperrors.NotFound("event request")
	}
	if scanErr != nil {
		return scanErr
	}
	if rowFacilityID != facilityID {
		return apperrors.Forbidden("event request belongs to another facility")
	}
	return apperrors.New(apperrors.ErrCodeConflict, "event request already "+status)
}

func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
