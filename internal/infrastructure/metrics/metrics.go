// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the service and HTTP layers.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordUserCreated()
	RecordUserDeleted()
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	usersCreated    prometheus.Counter
	usersDeleted    prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_registry_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_registry_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_users_created_total",
			Help: "Users accepted by the create operation.",
		}),
		usersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_users_deleted_total",
			Help: "Successful delete-by-email operations.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.usersCreated,
		c.usersDeleted,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordUserCreated() {
	c.usersCreated.Inc()
}

func (c *Collector) RecordUserDeleted() {
	c.usersDeleted.Inc()
}

// Handler returns a fiber handler serving the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// Noop discards everything.
type Noop struct{}

func (Noop) RecordRequest(string, string, int, time.Duration) {}
func (Noop) RecordUserCreated() {}
func (Noop) RecordUserDeleted() {}
