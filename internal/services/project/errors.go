package project

import (
	"fmt"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName   = &models.ValidationError{Field: "name", Message: "Project name cannot be empty"}
	ErrNameTooLong = &models.ValidationError{
		Field:   "name",
		Message: fmt.Sprintf("Project name too long (max %d characters)", models.MaxNameLength),
	}
	// ErrDuplicateName is shared with the repository so a lost race on the
	// unique index reports the same error as the pre-check
	ErrDuplicateName = database.ErrDuplicateProjectName

	// Permission errors
	ErrNotOwner = &models.PermissionDeniedError{Message: "You can only access your own projects"}
)
