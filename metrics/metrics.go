package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ToMars  = "to_mars"
	ToEarth = "to_earth"
)

var (
	conversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marsclock_conversions_total",
			Help: "Total number of time conversions.",
		},
		[]string{"site", "direction"},
	)

	currentSol = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marsclock_sol",
			Help: "Most recently observed mission sol.",
		},
		[]string{"site"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marsclock_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marsclock_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

func init() {
	prometheus.MustRegister(conversionsTotal)
	prometheus.MustRegister(currentSol)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveConversion counts a conversion at a site. direction is ToMars
// or ToEarth.
func ObserveConversion(site, direction string) {
	conversionsTotal.WithLabelValues(site, direction).Inc()
}

func SetSol(site string, sol int) {
	currentSol.WithLabelValues(site).Set(float64(sol))
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// CountConversions observes a conversion for each request next
// answers successfully. Rejected requests aren't counted.
func CountConversions(site, direction string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		if rw.statusCode < http.StatusBadRequest {
			ObserveConversion(site, direction)
		}
	})
}

// Middleware records request count and duration for each request.
// Paths not in routes are recorded as "other".
func Middleware(routes []string, next http.Handler) http.Handler {
	known := make(map[string]bool, len(routes))
	for _, route := range routes {
		known[route] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		path := normalizeRoute(known, r.URL.Path)

		httpRequestsTotal.WithLabelValues(path, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(path, r.Method).Observe(duration)
	})
}

// normalizeRoute keeps label cardinality bounded
func normalizeRoute(known map[string]bool, path string) string {
	if known[path] {
		return path
	}
	return "other"
}
