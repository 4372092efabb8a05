package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"personal-site/internal/domain/ports"
)

// NotesMetrics tracks the notes pipeline.
type NotesMetrics struct {
	Fetches        *prometheus.CounterVec
	Renders        *prometheus.CounterVec
	StaleDiscarded prometheus.Counter
}

var _ ports.NotesMetrics = (*NotesMetrics)(nil)

// NewNotesMetrics creates and registers notes metrics on the given registry.
func NewNotesMetrics(reg prometheus.Registerer) *NotesMetrics {
	m := &NotesMetrics{
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notes",
			Name:      "fetches_total",
			Help:      "Remote fetches by kind (listing, markdown) and outcome.",
		}, []string{"kind", "outcome"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notes",
			Name:      "renders_total",
			Help:      "Rendered notes by outcome (ok, degraded, error).",
		}, []string{"outcome"}),
		StaleDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notes",
			Name:      "stale_selections_discarded_total",
			Help:      "Selections whose result arrived after a newer selection.",
		}),
	}

	reg.MustRegister(m.Fetches, m.Renders, m.StaleDiscarded)
	return m
}

func (m *NotesMetrics) FetchCompleted(kind, outcome string) {
	m.Fetches.WithLabelValues(kind, outcome).Inc()
}

func (m *NotesMetrics) RenderCompleted(outcome string) {
	m.Renders.WithLabelValues(outcome).Inc()
}

func (m *NotesMetrics) StaleSelectionDiscarded() {
	m.StaleDiscarded.Inc()
}
