package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/metrics"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// Service defines all task-related business operations. A task belongs to
// the user who owns its project; every method checks that ownership.
type Service interface {
	// Read operations
	GetUserTask(ctx context.Context, user *models.User, id types.TaskID) (*models.Task, error)
	GetUserTasks(ctx context.Context, user *models.User, query TaskQuery) ([]*models.Task, error)
	GetProjectTasksSorted(ctx context.Context, user *models.User, projectID types.ProjectID) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, user *models.User, projectID types.ProjectID, title string, deadline *time.Time) (*models.Task, error)
	UpdateTask(ctx context.Context, user *models.User, id types.TaskID, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, user *models.User, id types.TaskID) error

	// Status and single-field changes
	CompleteTask(ctx context.Context, user *models.User, id types.TaskID) (*models.Task, error)
	ToggleTaskStatus(ctx context.Context, user *models.User, id types.TaskID) (*models.Task, error)
	SetPriority(ctx context.Context, user *models.User, id types.TaskID, priority int) (*models.Task, error)
	SetDeadline(ctx context.Context, user *models.User, id types.TaskID, deadline time.Time) (*models.Task, error)
}

// TaskQuery narrows GetUserTasks. Zero fields are ignored.
type TaskQuery struct {
	ProjectID types.ProjectID
	Status    models.TaskStatus
	Priority  int
	// Overdue selects unfinished tasks whose deadline has passed
	Overdue bool
}

// repository defines the data access methods needed by the task service
// This interface is private to the service layer
type repository interface {
	GetByID(ctx context.Context, id types.TaskID) (*models.Task, error)
	List(ctx context.Context, filter database.TaskFilter) ([]*models.Task, error)
	ListByProjectSorted(ctx context.Context, projectID types.ProjectID) ([]*models.Task, error)

	Create(ctx context.Context, fields database.TaskFields) (*models.Task, error)
	Update(ctx context.Context, task *models.Task, patch models.TaskPatch) (*models.Task, error)
	SetStatus(ctx context.Context, task *models.Task, status models.TaskStatus) (*models.Task, error)
	Delete(ctx context.Context, task *models.Task) error
}

// projectAccessor resolves a project on behalf of a user, failing with
// NotFound or PermissionDenied. Satisfied by the project service.
type projectAccessor interface {
	GetUserProject(ctx context.Context, user *models.User, id types.ProjectID) (*models.Project, error)
}

// Option configures the task service
type Option func(*service)

// WithClock sets the clock used for deadline checks and overdue queries
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.validator.Now = now
	}
}

const entity = "task"

// service implements Service interface
type service struct {
	repo      repository
	projects  projectAccessor
	validator Validator
	logger    *slog.Logger
}

// NewService creates a new task service. A nil logger falls back to
// slog.Default().
func NewService(repo repository, projects projectAccessor, logger *slog.Logger, opts ...Option) Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &service{
		repo:     repo,
		projects: projects,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetUserTask retrieves one task, checking the user owns it
func (s *service) GetUserTask(ctx context.Context, user *models.User, id types.TaskID) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "get", err) }()

	task, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateAccess(user, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetUserTasks retrieves the user's tasks across all projects, newest first.
// Ownership is part of the query, so other users' rows are never loaded.
func (s *service) GetUserTasks(ctx context.Context, user *models.User, query TaskQuery) (tasks []*models.Task, err error) {
	defer func() { metrics.Observe(entity, "list", err) }()

	if user == nil || !user.ID.Valid() {
		return nil, ErrNotOwner
	}

	filter := database.TaskFilter{
		UserID:    user.ID,
		ProjectID: query.ProjectID,
		Status:    query.Status,
		Priority:  query.Priority,
	}
	if query.Status != "" {
		if err := s.validator.ValidateStatus(query.Status); err != nil {
			return nil, err
		}
	}
	if query.Priority != 0 {
		if err := s.validator.ValidatePriority(query.Priority); err != nil {
			return nil, err
		}
	}
	if query.Overdue {
		now := s.validator.now()
		filter.DeadlineBefore = &now
		filter.ExcludeDone = true
	}

	return s.repo.List(ctx, filter)
}

// GetProjectTasksSorted retrieves a project's tasks in display order: active
// before done, then by priority, then newest first
func (s *service) GetProjectTasksSorted(ctx context.Context, user *models.User, projectID types.ProjectID) (tasks []*models.Task, err error) {
	defer func() { metrics.Observe(entity, "list_sorted", err) }()

	project, err := s.projects.GetUserProject(ctx, user, projectID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByProjectSorted(ctx, project.ID)
}

// CreateTask creates a task in one of the user's projects with status new
// and medium priority
func (s *service) CreateTask(ctx context.Context, user *models.User, projectID types.ProjectID, title string, deadline *time.Time) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "create", err) }()

	project, err := s.projects.GetUserProject(ctx, user, projectID)
	if err != nil {
		return nil, err
	}

	clean, err := s.validator.ValidateCreate(title, deadline)
	if err != nil {
		return nil, err
	}

	task, err = s.repo.Create(ctx, database.TaskFields{
		ProjectID: project.ID,
		Name:      clean,
		Status:    models.DefaultTaskStatus,
		Priority:  models.DefaultPriority,
		Deadline:  deadline,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"project_id", project.ID,
		"user_id", user.ID,
	)
	return task, nil
}

// UpdateTask applies the supplied fields of patch to one of the user's tasks
func (s *service) UpdateTask(ctx context.Context, user *models.User, id types.TaskID, patch models.TaskPatch) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "update", err) }()

	task, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, err = s.validator.ValidateUpdate(user, task, patch)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, task, patch)
}

// DeleteTask deletes one of the user's tasks
func (s *service) DeleteTask(ctx context.Context, user *models.User, id types.TaskID) (err error) {
	defer func() { metrics.Observe(entity, "delete", err) }()

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDelete(user, task); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, task); err != nil {
		return err
	}

	s.logger.Info("task deleted",
		"task_id", task.ID,
		"project_id", task.ProjectID,
		"user_id", user.ID,
	)
	return nil
}

// CompleteTask marks a task done. Completing a done task is a BusinessRule error.
func (s *service) CompleteTask(ctx context.Context, user *models.User, id types.TaskID) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "complete", err) }()

	task, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateComplete(user, task); err != nil {
		return nil, err
	}

	return s.repo.SetStatus(ctx, task, models.StatusDone)
}

// ToggleTaskStatus moves a done task back to in_progress and any other task
// to done
func (s *service) ToggleTaskStatus(ctx context.Context, user *models.User, id types.TaskID) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "toggle", err) }()

	task, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateToggle(user, task); err != nil {
		return nil, err
	}

	return s.repo.SetStatus(ctx, task, toggledStatus(task.Status))
}

// SetPriority changes only the priority of a task
func (s *service) SetPriority(ctx context.Context, user *models.User, id types.TaskID, priority int) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "set_priority", err) }()

	task, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSetPriority(user, task, priority); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, task, models.TaskPatch{Priority: &priority})
}

// SetDeadline changes only the deadline of a task
func (s *service) SetDeadline(ctx context.Context, user *models.User, id types.TaskID, deadline time.Time) (task *models.Task, err error) {
	defer func() { metrics.Observe(entity, "set_deadline", err) }()

	task, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSetDeadline(user, task, deadline); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, task, models.TaskPatch{Deadline: &deadline})
}
