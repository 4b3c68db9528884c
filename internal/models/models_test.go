package models

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"not found", &NotFoundError{Model: "Project", Identifier: 3}, KindNotFound},
		{"permission", &PermissionDeniedError{Message: "nope"}, KindPermissionDenied},
		{"validation", &ValidationError{Field: "name", Message: "bad"}, KindValidation},
		{"business rule", &BusinessRuleError{Message: "done"}, KindBusinessRule},
		{"data access", &DataAccessError{Op: "get", Err: sql.ErrConnDone}, KindDataAccess},
		{"wrapped validation", fmt.Errorf("outer: %w", &ValidationError{Field: "priority"}), KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError_IsMatchesFieldAndMessage(t *testing.T) {
	a := &ValidationError{Field: "name", Message: "Project with this name already exists"}
	b := &ValidationError{Field: "name", Message: "Project with this name already exists"}
	c := &ValidationError{Field: "title", Message: "Project with this name already exists"}

	if !errors.Is(a, b) {
		t.Error("expected errors with equal field and message to match")
	}
	if errors.Is(a, c) {
		t.Error("expected errors with different fields not to match")
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Model: "Task", Identifier: 42}
	want := `Task with identifier "42" not found`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, &NotFoundError{Model: "Task", Identifier: "42"}) {
		t.Error("expected identifier comparison to ignore the dynamic type")
	}
}

func TestDataAccessError_Unwrap(t *testing.T) {
	err := &DataAccessError{Op: "create project", Err: sql.ErrTxDone}
	if !errors.Is(err, sql.ErrTxDone) {
		t.Error("expected DataAccessError to unwrap to the driver error")
	}
}

func TestValidationField(t *testing.T) {
	field, ok := ValidationField(fmt.Errorf("wrap: %w", &ValidationError{Field: "deadline", Message: "x"}))
	if !ok || field != "deadline" {
		t.Errorf("ValidationField() = %q, %v; want deadline, true", field, ok)
	}
	if _, ok := ValidationField(errors.New("other")); ok {
		t.Error("expected no field for a non-validation error")
	}
}

// ============================================================================
// Enum Tests
// ============================================================================

func TestTaskStatus_Valid(t *testing.T) {
	for _, s := range []TaskStatus{StatusNew, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if TaskStatus("archived").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestPriorityLabel(t *testing.T) {
	if PriorityLabel(DefaultPriority) != "Medium" {
		t.Errorf("default priority label = %q, want Medium", PriorityLabel(DefaultPriority))
	}
	if PriorityLabel(9) != "Unknown" {
		t.Errorf("out of range label = %q, want Unknown", PriorityLabel(9))
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (TaskPatch{ClearDeadline: true}).IsEmpty() {
		t.Error("clear deadline patch should not be empty")
	}
	name := "x"
	if (ProjectPatch{Name: &name}).IsEmpty() {
		t.Error("name patch should not be empty")
	}
}
