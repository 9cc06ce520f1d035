package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "camperrent", Name: "bookings_created_total", Help: "Total number of bookings created"})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{Namespace: "camperrent", Name: "bookings_cancelled_total", Help: "Total number of bookings cancelled"})
	BookingConflicts  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "camperrent", Name: "booking_conflicts_total", Help: "Booking attempts rejected because the date range was taken"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "camperrent", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "camperrent",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
