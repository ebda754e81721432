// Package metrics exposes prometheus counters for intake actions
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected" // validation, lock or state error
	OutcomeFailed   = "failed"   // storage error
)

// Observer records intake actions into its own prometheus registry
type Observer struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New makes observer with a fresh registry, including go and process collectors
func New() *Observer {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Observer{
		registry: reg,
		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feedintake_actions_total",
			Help: "Number of intake actions by action and outcome",
		}, []string{"action", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feedintake_action_duration_seconds",
			Help:    "Duration of intake actions",
			Buckets: prometheus.DefBuckets,
		}, []string{"action"}),
	}
}

// RecordAction counts a finished action
func (o *Observer) RecordAction(action, outcome string, took time.Duration) {
	o.actions.WithLabelValues(action, outcome).Inc()
	o.duration.WithLabelValues(action).Observe(took.Seconds())
}

// Handler returns http handler serving metrics of this observer
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}
