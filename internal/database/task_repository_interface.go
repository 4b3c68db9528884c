package database

import (
	"context"

	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, id types.TaskID) (*models.Task, error)
	Exists(ctx context.Context, filter TaskFilter) (bool, error)
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	ListByProjectSorted(ctx context.Context, projectID types.ProjectID) ([]*models.Task, error)
	CountByProject(ctx context.Context, projectID types.ProjectID) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Create(ctx context.Context, fields TaskFields) (*models.Task, error)
	Update(ctx context.Context, task *models.Task, patch models.TaskPatch) (*models.Task, error)
	SetStatus(ctx context.Context, task *models.Task, status models.TaskStatus) (*models.Task, error)
	Delete(ctx context.Context, task *models.Task) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

var _ TaskRepository = (*TaskRepo)(nil)
