package database

// DataStore groups the per-entity repositories. Consumers should depend on
// the smallest interface they need (ProjectRepository, TaskRepository, ...).
type DataStore interface {
	Users() UserRepository
	Projects() ProjectRepository
	Tasks() TaskRepository
}
