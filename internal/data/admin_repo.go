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

// AdminRepo provides database operations for administrator principals.
type AdminRepo struct {
	DB *sql.DB
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

const adminColumns = `id, email, name, password_hash, created_at, updated_at`

func (r *AdminRepo) Create(ctx context.Context, p model.CreateAdminParams) (*model.Admin, error) {
	query := fmt.Sprintf(`
		INSERT INTO admins (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING %s`, adminColumns)
	return r.collectOne(ctx, query, p.Email, p.Name, p.PasswordHash)
}

func (r *AdminRepo) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id = $1`, adminColumns)
	return r.collectOne(ctx, query, id)
}

func (r *AdminRepo) Update(ctx context.Context, id int64, p model.UpdateAdminParams) (*model.Admin, error) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 4)
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
	if p.PasswordHash != nil {
		add("password_hash", *p.PasswordHash)
	}

	if len(setParts) == 0 {
		return r.GetByID(ctx, id)
	}
	setParts = append(setParts, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE admins SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args), adminColumns)
	return r.collectOne(ctx, query, args...)
}

func (r *AdminRepo) collectOne(ctx context.Context, query string, args ...any) (*model.Admin, error) {
	var out model.Admin
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
