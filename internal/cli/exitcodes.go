package cli

import (
	"errors"

	"github.com/thenoetrevino/tracker/internal/config"
	"github.com/thenoetrevino/tracker/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed ids or dates.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, project not found, unknown user email.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Config files or input that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or duplicate names, priority out of range,
	// deadlines in the past, or any input that fails validation rules.
	ExitValidation = 5

	// ExitPermissionDenied indicates the acting user does not own the resource.
	ExitPermissionDenied = 6

	// ExitBusinessRule indicates the request conflicts with the current state,
	// e.g. completing a task that is already done.
	ExitBusinessRule = 7
)

// UsageError marks bad command-line input that never reached a service
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// reportedError wraps an error that has already been shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already printed, so Execute only sets the exit code
func Reported(err error) error {
	if err == nil || IsReported(err) {
		return err
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already printed by a command
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

func isUsage(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage)
}

func isConfig(err error) bool {
	var parse *config.ParseError
	return errors.As(err, &parse)
}

// ExitCodeFor maps an error returned by a command to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if isUsage(err) {
		return ExitUsage
	}
	if isConfig(err) {
		return ExitDataErr
	}

	switch models.KindOf(err) {
	case models.KindNotFound:
		return ExitNotFound
	case models.KindPermissionDenied:
		return ExitPermissionDenied
	case models.KindValidation:
		return ExitValidation
	case models.KindBusinessRule:
		return ExitBusinessRule
	}
	return ExitError
}

// ErrorCode returns the machine-readable code printed with an error
func ErrorCode(err error) string {
	if isUsage(err) {
		return "USAGE_ERROR"
	}
	if isConfig(err) {
		return "CONFIG_ERROR"
	}

	switch models.KindOf(err) {
	case models.KindNotFound:
		return "NOT_FOUND"
	case models.KindPermissionDenied:
		return "PERMISSION_DENIED"
	case models.KindValidation:
		return "VALIDATION_ERROR"
	case models.KindBusinessRule:
		return "BUSINESS_RULE"
	case models.KindDataAccess:
		return "DATA_ACCESS_ERROR"
	}
	return "ERROR"
}
