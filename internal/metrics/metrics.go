// Package metrics содержит счётчики Prometheus портала и middleware,
// измеряющее время обработки HTTP-запросов по шаблону маршрута chi.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// LoginAttempts попытки входа по результату: ok, not_found, bad_password, error.
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	// Registrations регистрации по результату: ok, exists, error.
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_registrations_total",
			Help: "Registrations by result",
		},
		[]string{"result"},
	)

	// GatewayRequests обращения к внешнему REST API.
	GatewayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_gateway_requests_total",
			Help: "Requests to the remote resource host",
		},
		[]string{"resource", "outcome"},
	)

	// FilterPasses количество пересчётов выборки статей.
	FilterPasses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_discovery_filter_passes_total",
			Help: "Article discovery filter recomputations",
		},
	)

	registerOnce sync.Once
)

// Handler для /metrics
var Handler = promhttp.Handler

// Init регистрирует метрики в реестре по умолчанию. Повторные вызовы ничего не делают.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpLatency, LoginAttempts, Registrations, GatewayRequests, FilterPasses)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// HTTPMetrics измеряет латентность запросов.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		httpLatency.WithLabelValues(r.Method, routePattern(r), strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if patt := rc.RoutePattern(); patt != "" {
			return patt
		}
	}
	return r.URL.Path
}
