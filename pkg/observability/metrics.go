package observability

import (
	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/aretw0/recipebook/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by registry hooks.
type Metrics struct {
	Added      prometheus.Counter
	Rejected   prometheus.Counter
	Clears     prometheus.Counter
	Lookups    *prometheus.CounterVec
	Registered prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Added: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipebook_recipes_added_total",
			Help: "Total number of recipes accepted by the registry",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipebook_recipes_rejected_total",
			Help: "Total number of recipes refused by validation",
		}),
		Clears: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipebook_registry_clears_total",
			Help: "Total number of registry clears",
		}),
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipebook_lookups_total",
				Help: "Total number of recipe lookups by result",
			},
			[]string{"result"},
		),
		Registered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recipebook_recipes_registered",
			Help: "Number of recipes currently registered",
		}),
	}
	reg.MustRegister(m.Added, m.Rejected, m.Clears, m.Lookups, m.Registered)
	return m
}

// Hooks returns registry hooks that record into m.
func (m *Metrics) Hooks() registry.Hooks {
	return registry.Hooks{
		OnAdd: func(_ domain.Recipe, _ bool, size int) {
			m.Added.Inc()
			m.Registered.Set(float64(size))
		},
		OnReject: func(domain.Recipe, error) {
			m.Rejected.Inc()
		},
		OnClear: func(int) {
			m.Clears.Inc()
			m.Registered.Set(0)
		},
		OnLookup: func(_ string, found bool) {
			result := "miss"
			if found {
				result = "hit"
			}
			m.Lookups.WithLabelValues(result).Inc()
		},
	}
}
