package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bloodlink-my/bloodlink/internal/data/pgxutil"
	"github.com/bloodlink-my/bloodlink/internal/domain/model"
	apperrors "github.com/bloodlink-my/bloodlink/internal/errors"
)

// RegistrationRepo manages event registrations and the attendance
// transitions that feed donation history and donor eligibility.
type RegistrationRepo struct {
	DB *sql.DB
}

// NewRegistrationRepo creates a new RegistrationRepo.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo {
	return &RegistrationRepo{DB: db}
}

const registrationColumns = `id, event_id, donor_id, status, registered_at`

// Create registers a donor for an event. The event row is locked while
// counting so two concurrent registrations cannot both squeeze past the
// capacity limit; the (event_id, donor_id) unique constraint catches
// duplicate sign-ups.
func (r *RegistrationRepo) Create(ctx context.Context, eventID, donorID int64) (*model.Registration, error) {
	insert := fmt.Sprintf(`
		INSERT INTO registrations (event_id, donor_id)
		VALUES ($1, $2)
		RETURNING %s`, registrationColumns)

	var out model.Registration
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var maxAttendees int
		scanErr := tx.QueryRow(ctx,
			`SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`, eventID).
			Scan(&maxAttendees)
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return apperrors.NotFound("event")
		}
		if scanErr != nil {
			return scanErr
		}

		var count int
		if scanErr = tx.QueryRow(ctx,
			`SELECT count(*) FROM registrations WHERE event_id = $1`, eventID).
			Scan(&count); scanErr != nil {
			return scanErr
		}
		if count >= maxAttendees {
			return apperrors.New(apperrors.ErrCodeConflict, "event is full")
		}

		rows, queryErr := tx.Query(ctx, insert, eventID, donorID)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Registration])
		return collectErr
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a registration.
func (r *RegistrationRepo) GetByID(ctx context.Context, id int64) (*model.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1`, registrationColumns)

	var out model.Registration
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Registration])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByEvent returns an event's registrations in sign-up order.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID int64) ([]model.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE event_id = $1 ORDER BY registered_at, id`,
		registrationColumns)
	return r.collectMany(ctx, query, eventID)
}

// ListByDonor returns a donor's registrations, newest first.
func (r *RegistrationRepo) ListByDonor(ctx context.Context, donorID int64) ([]model.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE donor_id = $1 ORDER BY registered_at DESC, id DESC`,
		registrationColumns)
	return r.collectMany(ctx, query, donorID)
}

// MarkAbsent moves a registration from registered to absent and notifies the
// donor, in one transaction. The status guard makes terminal registrations
// immutable.
func (r *RegistrationRepo) MarkAbsent(ctx context.Context, registrationID int64, notifyDescription string, notifyRedirect *string) (*model.Registration, error) {
	query := fmt.Sprintf(`
		UPDATE registrations
		SET status = 'absent'
		WHERE id = $1 AND status = 'registered'
		RETURNING %s`, registrationColumns)

	var out model.Registration
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, queryErr := tx.Query(ctx, query, registrationID)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Registration])
		if collectErr != nil {
			return r.classifyGuardMiss(ctx, tx, registrationID, collectErr)
		}
		_, execErr := tx.Exec(ctx,
			`INSERT INTO donor_notifications (description, redirect, principal_id) VALUES ($1, $2, $3)`,
			notifyDescription, notifyRedirect, out.DonorID)
		return execErr
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// MarkAttended records a completed donation: the registration flips to
// attended, a donation-history row is written, the donor enters the
// post-donation cooldown, and the donor is notified. All four writes commit
// or roll back together.
func (r *RegistrationRepo) MarkAttended(ctx context.Context, registrationID int64, notifyDescription string, notifyRedirect *string) (*model.Registration, error) {
	attend := fmt.Sprintf(`
		UPDATE registrations
		SET status = 'attended'
		WHERE id = $1 AND status = 'registered'
		RETURNING %s`, registrationColumns)

	var out model.Registration
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, queryErr := tx.Query(ctx, attend, registrationID)
		if queryErr != nil {
			return queryErr
		}
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Registration])
		if collectErr != nil {
			return r.classifyGuardMiss(ctx, tx, registrationID, collectErr)
		}

		if _, execErr := tx.Exec(ctx,
			`INSERT INTO donation_history (donor_id, event_id) VALUES ($1, $2)`,
			out.DonorID, out.EventID); execErr != nil {
			return execErr
		}
		if _, execErr := tx.Exec(ctx,
			`UPDATE donors SET eligibility = 'ineligible', updated_at = now()
			 WHERE id = $1 AND eligibility = 'eligible'`,
			out.DonorID); execErr != nil {
			return execErr
		}
		_, execErr := tx.Exec(ctx,
			`INSERT INTO donor_notifications (description, redirect, principal_id) VALUES ($1, $2, $3)`,
			notifyDescription, notifyRedirect, out.DonorID)
		return execErr
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func (r *RegistrationRepo) classifyGuardMiss(ctx context.Context, tx pgx.Tx, registrationID int64, cause error) error {
	if !errors.Is(cause, pgx.ErrNoRows) {
		return cause
	}
	var status string
	scanErr := tx.QueryRow(ctx,
		`SELECT status FROM registrations WHERE id = $1`, registrationID).Scan(&status)
	if errors.Is(scanErr, pgx.ErrNoRows) {
		return apperrors.NotFound("registration")
	}
	if scanErr != nil {
		return scanErr
	}
	return apperrors.New(apperrors.ErrCodeConflict, "registration already "+status)
}

func (r *RegistrationRepo) collectMany(ctx context.Context, query string, args ...any) ([]model.Registration, error) {
	var out []model.Registration
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Registration])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
