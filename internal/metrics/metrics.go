// Package metrics exposes Prometheus collectors for schedule computation,
// exports and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SchedulesComputed counts schedule computations by amortization method.
	SchedulesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_schedule_computations_total",
			Help: "Number of amortization schedules computed",
		},
		[]string{"method"},
	)

	// Exports counts schedule exports by format.
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_schedule_exports_total",
			Help: "Number of schedule exports",
		},
		[]string{"format"},
	)

	// LoansHeld tracks the size of the in-memory loan book.
	LoansHeld = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "loan_schedule_loans",
			Help: "Loans currently held in the session loan book",
		},
	)

	// HTTPRequests counts API requests by route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_schedule_http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration observes API request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loan_schedule_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
