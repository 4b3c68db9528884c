package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tracker/internal/models"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"not found", &models.NotFoundError{Model: "Task", Identifier: 1}, "not_found"},
		{"permission", &models.PermissionDeniedError{}, "permission_denied"},
		{"validation", &models.ValidationError{Field: "name"}, "validation"},
		{"business", &models.BusinessRuleError{Message: "x"}, "business_rule"},
		{"data access", &models.DataAccessError{Op: "x", Err: errors.New("boom")}, "data_access"},
		{"plain", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestObserve(t *testing.T) {
	ok := Operations.WithLabelValues("metrics_test", "observe", "ok")
	invalid := Operations.WithLabelValues("metrics_test", "observe", "validation")
	okBefore := testutil.ToFloat64(ok)
	invalidBefore := testutil.ToFloat64(invalid)

	Observe("metrics_test", "observe", nil)
	Observe("metrics_test", "observe", nil)
	Observe("metrics_test", "observe", &models.ValidationError{Field: "name"})

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, invalidBefore+1, testutil.ToFloat64(invalid))
}

func TestSnapshot(t *testing.T) {
	Observe("metrics_snapshot", "b", nil)
	Observe("metrics_snapshot", "a", nil)

	samples, err := Snapshot()
	require.NoError(t, err)

	var ours []Sample
	for _, s := range samples {
		if s.Entity == "metrics_snapshot" {
			ours = append(ours, s)
		}
	}
	require.Len(t, ours, 2)
	assert.Equal(t, "a", ours[0].Operation)
	assert.Equal(t, "b", ours[1].Operation)
	assert.Equal(t, "ok", ours[0].Outcome)
	assert.GreaterOrEqual(t, ours[0].Value, 1.0)
}
