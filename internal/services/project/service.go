package project

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/metrics"
	"github.com/thenoetrevino/tracker/internal/models"
	"github.com/thenoetrevino/tracker/internal/types"
)

// Service defines all project-related business operations. Every method acts
// on behalf of user and never reads or writes another user's projects.
type Service interface {
	// Read operations
	GetUserProjects(ctx context.Context, user *models.User) ([]*models.Project, error)
	GetUserProject(ctx context.Context, user *models.User, id types.ProjectID) (*models.Project, error)
	GetUserProjectsWithTasks(ctx context.Context, user *models.User) ([]*models.ProjectWithTasks, error)
	SearchUserProjects(ctx context.Context, user *models.User, query string) ([]*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, user *models.User, name string) (*models.Project, error)
	UpdateProject(ctx context.Context, user *models.User, id types.ProjectID, patch models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, user *models.User, id types.ProjectID) error
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	GetByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	Exists(ctx context.Context, filter database.ProjectFilter) (bool, error)
	ListByUser(ctx context.Context, userID types.UserID) ([]*models.Project, error)
	ListByUserWithTasks(ctx context.Context, userID types.UserID) ([]*models.ProjectWithTasks, error)
	SearchByName(ctx context.Context, userID types.UserID, q string) ([]*models.Project, error)

	Create(ctx context.Context, userID types.UserID, name string) (*models.Project, error)
	Update(ctx context.Context, project *models.Project, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, project *models.Project) error
}

const entity = "project"

// service implements Service interface with private repository
type service struct {
	repo      repository
	validator Validator
	logger    *slog.Logger
}

// NewService creates a new project service. A nil logger falls back to
// slog.Default().
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetUserProjects retrieves the user's projects, newest first
func (s *service) GetUserProjects(ctx context.Context, user *models.User) (projects []*models.Project, err error) {
	defer func() { metrics.Observe(entity, "list", err) }()

	if err := requireUser(user); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, user.ID)
}

// GetUserProject retrieves one project, checking the user owns it
func (s *service) GetUserProject(ctx context.Context, user *models.User, id types.ProjectID) (project *models.Project, err error) {
	defer func() { metrics.Observe(entity, "get", err) }()

	project, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateAccess(user, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetUserProjectsWithTasks retrieves the user's projects with their tasks
// loaded in display order
func (s *service) GetUserProjectsWithTasks(ctx context.Context, user *models.User) (projects []*models.ProjectWithTasks, err error) {
	defer func() { metrics.Observe(entity, "list_with_tasks", err) }()

	if err := requireUser(user); err != nil {
		return nil, err
	}
	return s.repo.ListByUserWithTasks(ctx, user.ID)
}

// SearchUserProjects retrieves the user's projects whose name contains query,
// ignoring case. A blank query returns every project.
func (s *service) SearchUserProjects(ctx context.Context, user *models.User, query string) (projects []*models.Project, err error) {
	defer func() { metrics.Observe(entity, "search", err) }()

	if err := requireUser(user); err != nil {
		return nil, err
	}
	return s.repo.SearchByName(ctx, user.ID, query)
}

// CreateProject creates a project owned by user
func (s *service) CreateProject(ctx context.Context, user *models.User, name string) (project *models.Project, err error) {
	defer func() { metrics.Observe(entity, "create", err) }()

	if err := requireUser(user); err != nil {
		return nil, err
	}

	clean, err := s.validator.ValidateCreate(ctx, name, s.nameTaken(user, 0))
	if err != nil {
		return nil, err
	}

	project, err = s.repo.Create(ctx, user.ID, clean)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", project.ID,
		"user_id", user.ID,
		"name", project.Name,
	)
	return project, nil
}

// UpdateProject applies patch to one of the user's projects. A new name is
// re-validated for format and uniqueness, ignoring the project itself.
func (s *service) UpdateProject(ctx context.Context, user *models.User, id types.ProjectID, patch models.ProjectPatch) (project *models.Project, err error) {
	defer func() { metrics.Observe(entity, "update", err) }()

	project, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		clean, err := s.validator.ValidateUpdateName(ctx, user, project, *patch.Name, s.nameTaken(user, project.ID))
		if err != nil {
			return nil, err
		}
		patch.Name = &clean
	} else if err := s.validator.ValidateOwnership(user, project); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, project, patch)
}

// DeleteProject deletes one of the user's projects together with its tasks
func (s *service) DeleteProject(ctx context.Context, user *models.User, id types.ProjectID) (err error) {
	defer func() { metrics.Observe(entity, "delete", err) }()

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDelete(user, project); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, project); err != nil {
		return err
	}

	s.logger.Info("project deleted",
		"project_id", project.ID,
		"user_id", user.ID,
	)
	return nil
}

// nameTaken returns the uniqueness lookup for user's projects, skipping exclude
func (s *service) nameTaken(user *models.User, exclude types.ProjectID) NameTakenFunc {
	return func(ctx context.Context, name string) (bool, error) {
		return s.repo.Exists(ctx, database.ProjectFilter{
			UserID:    user.ID,
			Name:      name,
			ExcludeID: exclude,
		})
	}
}

// requireUser rejects calls made without an acting user
func requireUser(user *models.User) error {
	if user == nil || !user.ID.Valid() {
		return ErrNotOwner
	}
	return nil
}
