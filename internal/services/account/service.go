// Package account manages the users that own projects. Login and sessions
// live outside this module; it only creates and looks up accounts.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/metrics"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// Service defines account operations
type Service interface {
	CreateUser(ctx context.Context, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id types.UserID) (*models.User, error)
	// EnsureAdmin creates or refreshes a staff superuser with this password.
	// It reports whether the account was newly created.
	EnsureAdmin(ctx context.Context, email, password string) (*models.User, bool, error)
}

// repository defines the data access methods needed by the account service
type repository interface {
	Create(ctx context.Context, fields database.UserFields) (*models.User, error)
	GetByID(ctx context.Context, id types.UserID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateOrCreate(ctx context.Context, fields database.UserFields) (*models.User, bool, error)
}

// Option configures the account service
type Option func(*service)

// WithHashCost sets the bcrypt cost used for new password hashes
func WithHashCost(cost int) Option {
	return func(s *service) {
		s.hashCost = cost
	}
}

const entity = "user"

type service struct {
	repo     repository
	logger   *slog.Logger
	hashCost int
}

// NewService creates a new account service. A nil logger falls back to
// slog.Default().
func NewService(repo repository, logger *slog.Logger, opts ...Option) Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &service{
		repo:     repo,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeEmail trims email and lower-cases its domain part
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	return email[:at] + "@" + strings.ToLower(email[at+1:]), nil
}

// CreateUser creates an active account. An empty password leaves the account
// without a usable password.
func (s *service) CreateUser(ctx context.Context, email, password string) (user *models.User, err error) {
	defer func() { metrics.Observe(entity, "create", err) }()

	clean, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err = s.repo.Create(ctx, database.UserFields{
		Email:        clean,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// GetUserByEmail looks an account up by email, ignoring case
func (s *service) GetUserByEmail(ctx context.Context, email string) (user *models.User, err error) {
	defer func() { metrics.Observe(entity, "get", err) }()

	clean, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, clean)
}

// GetUserByID looks an account up by id
func (s *service) GetUserByID(ctx context.Context, id types.UserID) (user *models.User, err error) {
	defer func() { metrics.Observe(entity, "get", err) }()
	return s.repo.GetByID(ctx, id)
}

func (s *service) EnsureAdmin(ctx context.Context, email, password string) (user *models.User, created bool, err error) {
	defer func() { metrics.Observe(entity, "ensure_admin", err) }()

	clean, err := NormalizeEmail(email)
	if err != nil {
		return nil, false, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, false, err
	}

	user, created, err = s.repo.UpdateOrCreate(ctx, database.UserFields{
		Email:        clean,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
	})
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("admin user ensured", "user_id", user.ID, "created", created)
	return user, created, nil
}

// CheckPassword reports whether password matches the user's stored hash
func CheckPassword(user *models.User, password string) bool {
	if user.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *service) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", &models.ValidationError{Field: "password", Message: "Password is too long"}
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
