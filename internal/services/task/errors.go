package task

import (
	"fmt"

	"github.com/thenoetrevino/tracker/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle   = &models.ValidationError{Field: "title", Message: "Task title cannot be empty"}
	ErrTitleTooLong = &models.ValidationError{
		Field:   "title",
		Message: fmt.Sprintf("Task title too long (max %d characters)", models.MaxNameLength),
	}
	ErrInvalidPriority = &models.ValidationError{
		Field:   "priority",
		Message: fmt.Sprintf("Priority must be between %d and %d", models.MinPriority, models.MaxPriority),
	}
	ErrDeadlineInPast = &models.ValidationError{Field: "deadline", Message: "Deadline cannot be in the past"}
	ErrInvalidStatus  = &models.ValidationError{Field: "status", Message: "Status must be one of new, in_progress, done"}

	// Business logic errors
	ErrTaskAlreadyDone = &models.BusinessRuleError{Message: "Task is already completed"}

	// Permission errors
	ErrNotOwner = &models.PermissionDeniedError{Message: "You can only access tasks in your own projects"}
)
