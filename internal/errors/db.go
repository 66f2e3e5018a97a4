package errors

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the column name from a unique violation detail:
// "Key (ic_number)=(900101-01-1234) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// MapDBError classifies database errors into AppError instances at the
// repository call site, so nothing above the data layer sees raw pgx errors:
//   - pgx.ErrNoRows → NotFound
//   - unique violations → Conflict with the violated table and column
//   - foreign key violations → ForeignKey
//   - check and NOT NULL violations → Validation
//   - context timeouts/cancellations → Timeout/Canceled
//
// Unrecognized errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "request was canceled", Cause: err}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return mapUniqueViolation(pgErr)
	case pgerrcode.ForeignKeyViolation:
		return &AppError{
			Code:    ErrCodeForeignKey,
			Message: "referenced entity does not exist or is still in use",
			Table:   pgErr.TableName,
			Cause:   pgErr,
		}
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "invalid data",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	default:
		return &AppError{Code: ErrCodeInternal, Message: "database error", Cause: pgErr}
	}
}

// mapUniqueViolation attributes the conflict to the violated column so the
// public DUPLICATE(col) code can name it.
func mapUniqueViolation(pgErr *pgconn.PgError) error {
	field := pgErr.ColumnName

	// Postgres rarely populates ColumnName for unique violations; the detail
	// message is the reliable source.
	if field == "" && pgErr.Detail != "" {
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			field = m[1]
		}
	}
	if field == "" {
		field = inferFieldFromConstraint(pgErr.ConstraintName, pgErr.TableName)
	}

	return &AppError{
		Code:    ErrCodeConflict,
		Message: "value already exists",
		Field:   field,
		Table:   pgErr.TableName,
		Cause:   pgErr,
	}
}

// inferFieldFromConstraint attempts to infer the column from a constraint
// name following the "table_column_key" convention, e.g.
// "donors_ic_number_key" → "ic_number". Columns with underscores are only
// recovered when the table name is known and can be stripped as a prefix.
func inferFieldFromConstraint(constraintName, tableName string) string {
	if constraintName == "" {
		return ""
	}
	s := constraintName
	ok := false
	for _, suffix := range []string{"_key", "_unique", "_idx"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			ok = true
			break
		}
	}
	if !ok {
		return ""
	}
	if tableName != "" && strings.HasPrefix(s, tableName+"_") {
		return strings.TrimPrefix(s, tableName+"_")
	}
	parts := strings.Split(s, "_")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
