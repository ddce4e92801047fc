// Package metrics exposes Prometheus collectors for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pharmaduty"

// Metrics holds every collector registered by the service.
type Metrics struct {
	registry *prometheus.Registry

	SearchDuration     *prometheus.HistogramVec
	SearchMatches      prometheus.Histogram
	DutyMutationsTotal *prometheus.CounterVec
	RatingsTotal       *prometheus.CounterVec
	EventFailuresTotal *prometheus.CounterVec
	EventsReceived     *prometheus.CounterVec
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// NewRegistry creates a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// New registers the service collectors on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		SearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Time spent ranking pharmacies for one search",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"outcome"},
		),

		SearchMatches: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_matches",
				Help:      "Number of pharmacies matching a search before pagination",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),

		DutyMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "duty_mutations_total",
				Help:      "Duty period writes by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		RatingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ratings_total",
				Help:      "Rating submissions by kind (created or updated)",
			},
			[]string{"kind"},
		),

		EventFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Duty events that could not be published",
			},
			[]string{"type"},
		),

		EventsReceived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "duty_events_received_total",
				Help:      "Duty events received by the worker, by type and reconciliation outcome",
			},
			[]string{"type", "outcome"},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),

		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

// ObserveSearch records one discovery search.
func (m *Metrics) ObserveSearch(duration time.Duration, matches int) {
	m.SearchDuration.WithLabelValues("ok").Observe(duration.Seconds())
	m.SearchMatches.Observe(float64(matches))
}

// RecordDutyMutation counts a duty write.
func (m *Metrics) RecordDutyMutation(operation, outcome string) {
	m.DutyMutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordRating counts a rating submission.
func (m *Metrics) RecordRating(created bool) {
	kind := "updated"
	if created {
		kind = "created"
	}
	m.RatingsTotal.WithLabelValues(kind).Inc()
}

// RecordEventPublishFailure counts an undelivered event.
func (m *Metrics) RecordEventPublishFailure(eventType string) {
	m.EventFailuresTotal.WithLabelValues(eventType).Inc()
}

// RecordDutyEventReceived counts an event handled by the worker.
func (m *Metrics) RecordDutyEventReceived(eventType, outcome string) {
	m.EventsReceived.WithLabelValues(eventType, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency labelled by the matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = statusFromError(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.HTTPRequestsTotal.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
			m.HTTPDuration.WithLabelValues(route, c.Request().Method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// statusFromError predicts the status the error handler will write for err.
func statusFromError(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
