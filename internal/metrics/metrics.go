// Package metrics collects and exposes Prometheus metrics for the auth core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records auth and guard outcomes on a private registry.
type Collector struct {
	registry       *prometheus.Registry
	loginAttempts  *prometheus.CounterVec
	registrations  prometheus.Counter
	guardDecisions *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edudash_login_attempts_total",
			Help: "Login attempts by outcome.",
		}, []string{"result"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edudash_registrations_total",
			Help: "Successful user registrations.",
		}),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edudash_guard_decisions_total",
			Help: "Edge guard decisions by effect.",
		}, []string{"effect"}),
	}

	c.registry.MustRegister(c.loginAttempts, c.registrations, c.guardDecisions)
	return c
}

func (c *Collector) RecordLogin(result string) {
	c.loginAttempts.WithLabelValues(result).Inc()
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

func (c *Collector) RecordGuardDecision(effect string) {
	c.guardDecisions.WithLabelValues(effect).Inc()
}

// Handler exposes the registry for the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
