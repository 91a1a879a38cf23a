// Package metrics counts wizard activity on a private Prometheus registry.
// Nothing is served over HTTP; the counters are flushed to a node_exporter
// textfile when a session ends.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the wizard's counters.
type Recorder struct {
	registry        *prometheus.Registry
	actions         *prometheus.CounterVec
	validationErrs  *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
}

// New registers the counters on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "splitwizard_actions_total",
			Help: "User actions handled, by action and result.",
		}, []string{"action", "result"}),
		validationErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "splitwizard_validation_errors_total",
			Help: "Rejected user actions, by validation kind.",
		}, []string{"kind"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "splitwizard_transitions_total",
			Help: "Workflow step changes.",
		}, []string{"from", "to"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "splitwizard_persist_failures_total",
			Help: "Snapshot writes that failed, by key.",
		}, []string{"key"}),
	}
	r.registry.MustRegister(r.actions, r.validationErrs, r.transitions, r.persistFailures)
	return r
}

// Action counts one handled action. result is "ok", "rejected" or "error".
func (r *Recorder) Action(action, result string) {
	r.actions.WithLabelValues(action, result).Inc()
}

// ValidationError counts one rejected action.
func (r *Recorder) ValidationError(kind string) {
	r.validationErrs.WithLabelValues(kind).Inc()
}

// Transition counts one step change.
func (r *Recorder) Transition(from, to string) {
	r.transitions.WithLabelValues(from, to).Inc()
}

// PersistFailure counts one failed snapshot write.
func (r *Recorder) PersistFailure(key string) {
	r.persistFailures.WithLabelValues(key).Inc()
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every counter to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
