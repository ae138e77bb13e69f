// Package metrics provides Prometheus metrics collection for the booking service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PriceResolutionsTotal tracks price table lookups by outcome
	// ("resolved" or "unavailable").
	PriceResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_resolutions_total",
			Help: "Total number of forfait price resolutions",
		},
		[]string{"outcome"},
	)

	// TravelEstimatesTotal tracks travel fee estimations by outcome
	// ("estimated", "incomplete_address", "lookup_failed", "superseded").
	TravelEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_estimates_total",
			Help: "Total number of travel fee estimations",
		},
		[]string{"outcome"},
	)

	// GeocodingRequestsTotal tracks upstream geocoding calls by result
	// ("hit", "no_result", "error", "cache_hit", "circuit_open").
	GeocodingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocoding_requests_total",
			Help: "Total number of geocoding lookups",
		},
		[]string{"result"},
	)

	// GeocodingRequestDuration tracks upstream geocoding call duration.
	GeocodingRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geocoding_request_duration_seconds",
			Help:    "Geocoding lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// BookingSubmissionsTotal tracks booking submissions by status
	// ("accepted", "validation_error", "error").
	BookingSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_submissions_total",
			Help: "Total number of booking submissions",
		},
		[]string{"status"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPriceResolution records the outcome of a price table lookup.
func RecordPriceResolution(outcome string) {
	PriceResolutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordTravelEstimate records the outcome of a travel fee estimation.
func RecordTravelEstimate(outcome string) {
	TravelEstimatesTotal.WithLabelValues(outcome).Inc()
}

// RecordGeocodingRequest records an upstream geocoding call.
func RecordGeocodingRequest(result string, duration time.Duration) {
	GeocodingRequestsTotal.WithLabelValues(result).Inc()
	if duration > 0 {
		GeocodingRequestDuration.Observe(duration.Seconds())
	}
}

// RecordBookingSubmission records a booking submission.
func RecordBookingSubmission(status string) {
	BookingSubmissionsTotal.WithLabelValues(status).Inc()
}
