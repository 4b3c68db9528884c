package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// UserFields holds the columns written when creating or upserting a user
type UserFields struct {
	Email        string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
}

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sql.DB
	tr translator
}

// NewUserRepo creates a user repository
func NewUserRepo(db *sql.DB, logger *slog.Logger) *UserRepo {
	return &UserRepo{db: db, tr: translator{model: "User", logger: defaultLogger(logger)}}
}

const userColumns = `id, email, password_hash, is_active, is_staff, is_superuser, date_joined`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.DateJoined)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. A duplicate email (any case) is a Validation
// error on the email field.
func (r *UserRepo) Create(ctx context.Context, fields UserFields) (*models.User, error) {
	id, err := insertUser(ctx, r.db, fields)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, r.tr.translate("create user", fields.Email, err)
	}
	return r.GetByID(ctx, id)
}

func insertUser(ctx context.Context, q queryer, fields UserFields) (types.UserID, error) {
	result, err := q.ExecContext(ctx,
		`INSERT INTO users (email, email_key, password_hash, is_active, is_staff, is_superuser, date_joined)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fields.Email, foldKey(fields.Email), fields.PasswordHash, fields.IsActive, fields.IsStaff, fields.IsSuperuser, nowFunc(),
	)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return types.UserID(id), nil
}

// GetByID retrieves a user by its ID
func (r *UserRepo) GetByID(ctx context.Context, id types.UserID) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, r.tr.translate("get user", id, err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email_key = ?`, foldKey(email)))
	if err != nil {
		return nil, r.tr.translate("get user by email", email, err)
	}
	return u, nil
}

// ExistsByEmail reports whether a user with this email exists, ignoring case
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email_key = ?)`, foldKey(email)).Scan(&exists)
	if err != nil {
		return false, r.tr.translate("check user exists", email, err)
	}
	return exists, nil
}

// UpdateOrCreate updates the flags and password of the user with this email,
// creating it when missing. It reports whether a new row was inserted.
func (r *UserRepo) UpdateOrCreate(ctx context.Context, fields UserFields) (*models.User, bool, error) {
	var id types.UserID
	created := false

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email_key = ?`, foldKey(fields.Email)).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id, err = insertUser(ctx, tx, fields)
			created = true
			return err
		case err != nil:
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE users SET password_hash = ?, is_active = ?, is_staff = ?, is_superuser = ? WHERE id = ?`,
			fields.PasswordHash, fields.IsActive, fields.IsStaff, fields.IsSuperuser, id,
		)
		return err
	})
	if err != nil {
		return nil, false, r.tr.translate("update or create user", fields.Email, err)
	}

	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return u, created, nil
}
