package database

import (
	"context"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	Exists(ctx context.Context, filter ProjectFilter) (bool, error)
	ListByUser(ctx context.Context, userID types.UserID) ([]*models.Project, error)
	ListByUserWithTasks(ctx context.Context, userID types.UserID) ([]*models.ProjectWithTasks, error)
	SearchByName(ctx context.Context, userID types.UserID, q string) ([]*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Create(ctx context.Context, userID types.UserID, name string) (*models.Project, error)
	Update(ctx context.Context, project *models.Project, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, project *models.Project) error
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

var _ ProjectRepository = (*ProjectRepo)(nil)
