package database

import (
	"context"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// UserRepository defines the user operations needed by the account service.
type UserRepository interface {
	Create(ctx context.Context, fields UserFields) (*models.User, error)
	GetByID(ctx context.Context, id types.UserID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateOrCreate(ctx context.Context, fields UserFields) (*models.User, bool, error)
}

var _ UserRepository = (*UserRepo)(nil)
