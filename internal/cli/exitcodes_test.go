package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/tracker/internal/config"
	"github.com/thenoetrevino/tracker/internal/models"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		str  string
	}{
		{"nil", nil, ExitSuccess, "ERROR"},
		{"plain", errors.New("boom"), ExitError, "ERROR"},
		{"usage", &UsageError{Message: "bad flag"}, ExitUsage, "USAGE_ERROR"},
		{"not found", &models.NotFoundError{Model: "Task", Identifier: 1}, ExitNotFound, "NOT_FOUND"},
		{"validation", &models.ValidationError{Field: "priority"}, ExitValidation, "VALIDATION_ERROR"},
		{"permission", &models.PermissionDeniedError{}, ExitPermissionDenied, "PERMISSION_DENIED"},
		{"business rule", &models.BusinessRuleError{Message: "Task is already completed"}, ExitBusinessRule, "BUSINESS_RULE"},
		{"data access", &models.DataAccessError{Op: "get", Err: sql.ErrConnDone}, ExitError, "DATA_ACCESS_ERROR"},
		{"wrapped", fmt.Errorf("ctx: %w", &models.BusinessRuleError{}), ExitBusinessRule, "BUSINESS_RULE"},
		{"config", fmt.Errorf("failed to load config: %w", &config.ParseError{Path: "c.yaml", Err: errors.New("bad")}), ExitDataErr, "CONFIG_ERROR"},
		{"reported usage", Reported(&UsageError{Message: "x"}), ExitUsage, "USAGE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCodeFor(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.str, ErrorCode(tt.err))
			}
		})
	}
}

func TestReported(t *testing.T) {
	assert.NoError(t, Reported(nil))

	cause := errors.New("boom")
	once := Reported(cause)
	twice := Reported(once)

	assert.True(t, IsReported(once))
	assert.Same(t, once, twice)
	assert.ErrorIs(t, twice, cause)
	assert.False(t, IsReported(cause))
}
