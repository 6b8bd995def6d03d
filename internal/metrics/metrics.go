// Package metrics exposes bot activity as Prometheus collectors.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/minerva/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector groups the bot collectors registered on one registry.
type Collector struct {
	registry     *prometheus.Registry
	transitions  *prometheus.CounterVec
	unrecognized *prometheus.CounterVec
	requests     *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry, together with the Go
// runtime and process collectors.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minerva_transitions_total",
				Help: "Total number of menu transitions",
			},
			[]string{"from", "to"},
		),
		unrecognized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minerva_unrecognized_total",
				Help: "Total number of messages that matched no option",
			},
			[]string{"node_id"},
		),
		requests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "minerva_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "code"},
		),
	}

	c.registry.MustRegister(
		c.transitions,
		c.unrecognized,
		c.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Hooks returns lifecycle hooks that record transitions and re-prompts.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			c.transitions.WithLabelValues(e.FromNodeID, e.ToNodeID).Inc()
		},
		OnUnrecognized: func(_ context.Context, e *domain.InputEvent) {
			c.unrecognized.WithLabelValues(e.NodeID).Inc()
		},
	}
}

// ObserveRequest records the duration of one HTTP request.
func (c *Collector) ObserveRequest(route string, code int, d time.Duration) {
	c.requests.WithLabelValues(route, strconv.Itoa(code)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
