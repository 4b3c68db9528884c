package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tracker/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// nowFunc is the clock used for created_at/updated_at. Times are stored in
// UTC so that text comparison in ORDER BY matches chronological order.
var nowFunc = func() time.Time {
	return time.Now().UTC()
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// translator maps storage errors onto the domain taxonomy for one model
type translator struct {
	model  string
	logger *slog.Logger
}

// translate converts err for operation op on the row identified by id:
// missing rows become NotFound, constraint violations become Validation and
// anything else becomes DataAccess (logged here, with full context).
func (t translator) translate(op string, id any, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &models.NotFoundError{Model: t.model, Identifier: id}
	}

	if isConstraintViolation(err) {
		return &models.ValidationError{Field: "database", Message: constraintMessage(err)}
	}

	t.logger.Error("database error",
		"op", op,
		"model", t.model,
		"id", id,
		"error", err,
	)
	return &models.DataAccessError{Op: op, Err: err}
}

// isConstraintViolation reports whether err is any SQLITE_CONSTRAINT_* error
func isConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

// constraintMessage strips the driver's "constraint failed: " prefix noise
func constraintMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "constraint failed: "); i >= 0 {
		return msg[i:]
	}
	return msg
}

// nullTime converts an optional time into a bindable value in UTC
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// nullTimeToPtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

// closeRows closes rows and logs a failure
func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "error", err)
	}
}

// defaultLogger returns l, or slog.Default() when l is nil
func defaultLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
