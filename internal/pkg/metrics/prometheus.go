package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "userboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "userboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "userboard",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// User collection metrics
	usersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "userboard",
			Subsystem: "user",
			Name:      "total_count",
			Help:      "Number of users in the canonical collection",
		},
	)

	userOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "userboard",
			Subsystem: "user",
			Name:      "operations_total",
			Help:      "Total number of user collection operations",
		},
		[]string{"operation", "status"},
	)

	// Source metrics
	sourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "userboard",
			Subsystem: "source",
			Name:      "fetch_total",
			Help:      "Total number of fetches against the remote user sources",
		},
		[]string{"source", "status"},
	)

	sourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "userboard",
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of remote user source fetches in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	// Feed metrics
	feedRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "userboard",
			Subsystem: "feed",
			Name:      "running",
			Help:      "1 while the random user feed is running",
		},
	)

	feedTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "userboard",
			Subsystem: "feed",
			Name:      "ticks_total",
			Help:      "Total number of random user feed ticks by outcome",
		},
		[]string{"status"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetUsersCount sets the gauge for the canonical collection size
func SetUsersCount(count int) {
	usersTotal.Set(float64(count))
}

// RecordUserOperation records a user collection operation and its outcome
func RecordUserOperation(operation string, err error) {
	userOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

// RecordSourceFetch records a remote source fetch
func RecordSourceFetch(source string, err error, duration time.Duration) {
	sourceFetchTotal.WithLabelValues(source, outcome(err)).Inc()
	sourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// SetFeedRunning flips the feed running gauge
func SetFeedRunning(running bool) {
	if running {
		feedRunning.Set(1)
		return
	}
	feedRunning.Set(0)
}

// RecordFeedTick records the outcome of one feed tick: "added", "failed" or "discarded"
func RecordFeedTick(status string) {
	feedTicksTotal.WithLabelValues(status).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
