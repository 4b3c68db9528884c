package models

import (
	"errors"
	"fmt"
)

// Domain error taxonomy shared by repositories, validators and services.
// Callers classify errors with KindOf; the presentation layer alone decides
// how a kind is rendered (status code, exit code).

// Kind classifies a domain error
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPermissionDenied
	KindValidation
	KindBusinessRule
	KindDataAccess
)

// String returns the snake_case name used in logs and metric labels
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindValidation:
		return "validation"
	case KindBusinessRule:
		return "business_rule"
	case KindDataAccess:
		return "data_access"
	}
	return "unknown"
}

// NotFoundError is returned when a referenced row does not exist
type NotFoundError struct {
	Model      string
	Identifier any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %q not found", e.Model, fmt.Sprint(e.Identifier))
}

// Is matches another NotFoundError for the same model and identifier
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Model == e.Model && fmt.Sprint(t.Identifier) == fmt.Sprint(e.Identifier)
}

// PermissionDeniedError is returned when the requester does not own the entity
type PermissionDeniedError struct {
	Message string
}

func (e *PermissionDeniedError) Error() string {
	if e.Message == "" {
		return "permission denied"
	}
	return e.Message
}

func (e *PermissionDeniedError) Is(target error) bool {
	t, ok := target.(*PermissionDeniedError)
	return ok && t.Message == e.Message
}

// ValidationError is returned for malformed input. Field names the offending
// input so forms can attach the message to it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Field == e.Field && t.Message == e.Message
}

// BusinessRuleError is returned when valid input is refused because of the
// current state of the entity
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func (e *BusinessRuleError) Is(target error) bool {
	t, ok := target.(*BusinessRuleError)
	return ok && t.Message == e.Message
}

// DataAccessError wraps an unexpected storage failure
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// KindOf classifies err by walking its wrap chain
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var notFound *NotFoundError
	var denied *PermissionDeniedError
	var invalid *ValidationError
	var rule *BusinessRuleError
	var dataAccess *DataAccessError

	switch {
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &denied):
		return KindPermissionDenied
	case errors.As(err, &invalid):
		return KindValidation
	case errors.As(err, &rule):
		return KindBusinessRule
	case errors.As(err, &dataAccess):
		return KindDataAccess
	}
	return KindUnknown
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsPermissionDenied reports whether err is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	return KindOf(err) == KindPermissionDenied
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsBusinessRule reports whether err is a BusinessRuleError
func IsBusinessRule(err error) bool {
	return KindOf(err) == KindBusinessRule
}

// ValidationField returns the field named by a ValidationError in err's chain
func ValidationField(err error) (string, bool) {
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return invalid.Field, true
	}
	return "", false
}
