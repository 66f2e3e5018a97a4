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

// OrganiserRepo provides database operations for organiser principals.
type OrganiserRepo struct {
	DB *sql.DB
}

// NewOrganiserRepo creates a new OrganiserRepo.
func NewOrganiserRepo(db *sql.DB) *OrganiserRepo {
	return &OrganiserRepo{DB: db}
}

const organiserColumns = `id, email, name, phone, password_hash, created_at, updated_at`

func (r *OrganiserRepo) Create(ctx context.Context, p model.CreateOrganiserParams) (*model.Organiser, error) {
	query := fmt.Sprintf(`
		INSERT INTO organisers (email, name, phone, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, organiserColumns)
	return r.collectOne(ctx, query, p.Email, p.Name, p.Phone, p.PasswordHash)
}

func (r *OrganiserRepo) GetByID(ctx context.Context, id int64) (*model.Organiser, error) {
	query := fmt.Sprintf(`SELECT %s FROM organisers WHERE id = $1`, organiserColumns)
	return r.collectOne(ctx, query, id)
}

func (r *OrganiserRepo) Update(ctx context.Context, id int64, p model.UpdateOrganiserParams) (*model.Organiser, error) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
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
	if p.PasswordHash != nil {
		add("password_hash", *p.PasswordHash)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE organisers SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args), organiserColumns)
	return r.collectOne(ctx, query, args...)
}

func (r *OrganiserRepo) collectOne(ctx context.Context, query string, args ...any) (*model.Organiser, error) {
	var out model.Organiser
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Organiser])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
