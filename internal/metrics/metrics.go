// Package metrics counts service use cases with Prometheus counters.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/thenoetrevino/tracker/internal/models"
)

// OutcomeOK labels an operation that returned no error
const OutcomeOK = "ok"

// Operations counts every service use case by entity, operation and outcome.
// Outcome is "ok" or the error kind (see models.Kind).
var Operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tracker",
	Subsystem: "service",
	Name:      "operations_total",
	Help:      "Service operations by entity, operation and outcome.",
}, []string{"entity", "operation", "outcome"})

// Outcome returns the outcome label for err
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return models.KindOf(err).String()
}

// Observe records one operation
func Observe(entity, operation string, err error) {
	Operations.WithLabelValues(entity, operation, Outcome(err)).Inc()
}

// Sample is a single counter value
type Sample struct {
	Entity    string  `json:"entity"`
	Operation string  `json:"operation"`
	Outcome   string  `json:"outcome"`
	Value     float64 `json:"value"`
}

// Snapshot returns the current operation counters, sorted by label
func Snapshot() ([]Sample, error) {
	return snapshot(prometheus.DefaultGatherer)
}

func snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		if mf.GetName() != "tracker_service_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := Sample{Value: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				setLabel(&s, lp)
			}
			samples = append(samples, s)
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		a, b := samples[i], samples[j]
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		return a.Outcome < b.Outcome
	})
	return samples, nil
}

func setLabel(s *Sample, lp *dto.LabelPair) {
	switch lp.GetName() {
	case "entity":
		s.Entity = lp.GetValue()
	case "operation":
		s.Operation = lp.GetValue()
	case "outcome":
		s.Outcome = lp.GetValue()
	}
}
