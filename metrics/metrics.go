// Package metrics exposes Prometheus counters for review traffic.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reviews/models"
)

const namespace = "reviews"

// Collector owns a private registry so several apps (and tests) can coexist
// in one process.
type Collector struct {
	registry *prometheus.Registry
	created  *prometheus.CounterVec
	listed   prometheus.Counter
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Number of reviews created, by sentiment.",
		}, []string{"sentiment"}),
		listed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listed_total",
			Help:      "Number of review list requests served.",
		}),
	}

	c.registry.MustRegister(
		c.created,
		c.listed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, s := range models.Sentiments {
		c.created.WithLabelValues(string(s))
	}
	return c
}

// ReviewCreated counts one stored review.
func (c *Collector) ReviewCreated(s models.Sentiment) {
	c.created.WithLabelValues(string(s)).Inc()
}

// ReviewsListed counts one list request.
func (c *Collector) ReviewsListed() {
	c.listed.Inc()
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the exposition format through fiber.
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
