package server

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry holds everything served on /metrics.
var registry = prometheus.NewRegistry()

var (
	generationRequests = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "taleweaver_generation_requests_total",
			Help: "Total number of model calls, partitioned by operation and outcome.",
		},
		[]string{"op", "status"},
	)
	generationDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taleweaver_generation_duration_seconds",
			Help:    "Histogram of model call durations.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 12), // 0.5s .. ~17m
		},
		[]string{"op"},
	)
	validationFailures = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "taleweaver_validation_failures_total",
			Help: "Requests rejected before reaching the model.",
		},
		[]string{"path"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func observeGeneration(op string, start time.Time, status string) {
	generationRequests.WithLabelValues(op, status).Inc()
	generationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func metricsHandler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
