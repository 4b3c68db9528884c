package database

import "github.com/thenoetrevino/tracker/internal/models"

// Constraint violations with a known meaning. Other constraint failures are
// reported as a Validation error on the "database" field.
var (
	// ErrEmailTaken is returned when the users.email unique constraint fires
	ErrEmailTaken = &models.ValidationError{Field: "email", Message: "User with this email already exists"}

	// ErrDuplicateProjectName is returned when idx_projects_user_name fires
	ErrDuplicateProjectName = &models.ValidationError{Field: "name", Message: "Project with this name already exists"}
)
