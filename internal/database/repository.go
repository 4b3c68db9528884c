package database

import (
	"database/sql"
	"log/slog"
)

// Repository provides access to every entity repository over one connection.
type Repository struct {
	db       *sql.DB
	users    *UserRepo
	projects *ProjectRepo
	tasks    *TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
// A nil logger falls back to slog.Default().
func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	return &Repository{
		db:       db,
		users:    NewUserRepo(db, logger),
		projects: NewProjectRepo(db, logger),
		tasks:    NewTaskRepo(db, logger),
	}
}

// Users returns the user repository
func (r *Repository) Users() UserRepository {
	return r.users
}

// Projects returns the project repository
func (r *Repository) Projects() ProjectRepository {
	return r.projects
}

// Tasks returns the task repository
func (r *Repository) Tasks() TaskRepository {
	return r.tasks
}

// DB returns the underlying connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

var _ DataStore = (*Repository)(nil)
