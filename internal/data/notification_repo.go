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

// NotificationRepo provides access to the per-role notification queues.
// The role selects the backing table; the row shape is identical across
// the four queues.
type NotificationRepo struct {
	DB *sql.DB
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{DB: db}
}

const notificationColumns = `id, description, redirect, read, principal_id, created_at`

// ListByPrincipal returns a principal's notifications, newest first.
func (r *NotificationRepo) ListByPrincipal(ctx context.Context, role model.Role, principalID int64) ([]model.Notification, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE principal_id = $1
		ORDER BY created_at DESC, id DESC`,
		notificationColumns, role.NotificationTable())

	var out []model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, principalID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// MarkRead flips a notification's read flag. The principal guard keeps a
// caller from flipping another principal's rows.
func (r *NotificationRepo) MarkRead(ctx context.Context, role model.Role, principalID, notificationID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET read = TRUE WHERE id = $1 AND principal_id = $2`,
		role.NotificationTable())

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, execErr := conn.Exec(ctx, query, notificationID, principalID)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NotFound("notification")
		}
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// Create enqueues one notification for a principal.
func (r *NotificationRepo) Create(ctx context.Context, role model.Role, principalID int64, description string, redirect *string) error {
	query := fmt.Sprintf(`INSERT INTO %s (description, redirect, principal_id) VALUES ($1, $2, $3)`,
		role.NotificationTable())

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, query, description, redirect, principalID)
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// CreateBulk enqueues the same notification for many principals in one
// statement. Used by the eligibility reset job.
func (r *NotificationRepo) CreateBulk(ctx context.Context, role model.Role, principalIDs []int64, description string, redirect *string) error {
	if len(principalIDs) == 0 {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (description, redirect, principal_id)
		SELECT $1, $2, unnest($3::bigint[])`,
		role.NotificationTable())

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, query, description, redirect, principalIDs)
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}
