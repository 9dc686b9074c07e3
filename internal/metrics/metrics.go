// Package metrics records admin panel activity as Prometheus series.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jask/helpie/internal/provider"
)

const namespace = "helpie"

// Action labels.
const (
	ActionDelete   = "delete"
	ActionToggle   = "toggle_suspicious"
	ActionActivity = "view_activity"
)

// Outcome labels.
const (
	OutcomeRequested = "requested"
	OutcomeCancelled = "cancelled"
	OutcomeApplied   = "applied"
	OutcomeNoop      = "noop"
)

// Recorder is the subset the admin handlers need.
type Recorder interface {
	Action(action, outcome string)
	Providers(s provider.Summary)
}

// Prometheus implements Recorder on its own registry.
type Prometheus struct {
	registry  *prometheus.Registry
	actions   *prometheus.CounterVec
	providers *prometheus.GaugeVec
}

// New creates the collectors and registers them on a private registry.
func New() *Prometheus {
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_actions_total",
				Help:      "Admin actions by action and outcome.",
			},
			[]string{"action", "outcome"},
		),
		providers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "providers",
				Help:      "Providers currently listed, by kind.",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.actions, m.providers)
	return m
}

func (m *Prometheus) Action(action, outcome string) {
	m.actions.WithLabelValues(action, outcome).Inc()
}

func (m *Prometheus) Providers(s provider.Summary) {
	m.providers.WithLabelValues("total").Set(float64(s.Total))
	m.providers.WithLabelValues("suspicious").Set(float64(s.Suspicious))
	m.providers.WithLabelValues("active").Set(float64(s.Active))
}

// Gatherer exposes the registry for scraping and tests.
func (m *Prometheus) Gatherer() prometheus.Gatherer { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Nop discards everything.
type Nop struct{}

func (Nop) Action(string, string)      {}
func (Nop) Providers(provider.Summary) {}
