// Package metrics provides Prometheus metrics for the HURS scoring service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)

	submissionsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "hurs",
		Name:      "submissions_total",
		Help:      "Number of completed scoring submissions.",
	})
	ratingsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "hurs",
		Name:      "ratings_total",
		Help:      "Number of individual ratings appended to the store.",
	})
	exportsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "hurs",
		Name:      "exports_total",
		Help:      "Number of score table exports served.",
	})
)

// RecordSubmission counts one completed submission of the given batch size
func RecordSubmission(ratings int) {
	submissionsTotal.Inc()
	ratingsTotal.Add(float64(ratings))
}

// RecordExport counts one served export
func RecordExport() {
	exportsTotal.Inc()
}

// Handler returns the HTTP handler exposing the metrics registry
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
