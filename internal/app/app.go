package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/tracker/internal/database"
	accountservice "github.com/thenoetrevino/tracker/internal/services/account"
	projectservice "github.com/thenoetrevino/tracker/internal/services/project"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	logger *slog.Logger

	// Service layer (business logic)
	AccountService accountservice.Service
	ProjectService projectservice.Service
	TaskService    taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(db, cfg.logger)
	projects := projectservice.NewService(repo.Projects(), cfg.logger)

	return &App{
		repo:           repo,
		logger:         cfg.logger,
		AccountService: accountservice.NewService(repo.Users(), cfg.logger, cfg.accountOpts...),
		ProjectService: projects,
		TaskService:    taskservice.NewService(repo.Tasks(), projects, cfg.logger, cfg.taskOpts...),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Logger returns the logger shared by every service
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection
func (a *App) Close() error {
	return a.repo.DB().Close()
}
