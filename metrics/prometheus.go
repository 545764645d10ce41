package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/drakos74/polyfit/poly"
)

// Prometheus collects fit metrics.
type Prometheus struct {
	Fits       *prometheus.CounterVec
	ChiSquared *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the fit metrics under the given namespace.
func NewPrometheusMetrics(namespace string) Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fits_total",
				Help:      "Number of polynomial fits by solver and outcome.",
			}, []string{"solver", "outcome"}),
		ChiSquared: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "chi_squared",
				Help:      "Chi-squared of successful fits.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 10, 8),
			}, []string{"solver"}),
	}
}

// Register registers all collectors with the given registerer.
func (p Prometheus) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{p.Fits, p.ChiSquared} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe implements poly.Observer.
func (p Prometheus) Observe(o poly.Observation) {
	p.Fits.WithLabelValues(o.Solver, string(o.Outcome)).Inc()
	if o.Outcome == poly.OutcomeOK {
		p.ChiSquared.WithLabelValues(o.Solver).Observe(o.ChiSquared)
	}
}
