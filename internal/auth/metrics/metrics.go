// Package metrics exposes Prometheus counters for the auth service: HTTP
// traffic, session verifications per runtime and password checks.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/goalpost/pkg/sessionx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goalpost"

// Metrics owns a registry so tests and multiple servers do not collide on
// the global one.
type Metrics struct {
	reg *prometheus.Registry

	inFlight       prometheus.Gauge
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	verifications  *prometheus.CounterVec
	passwordChecks *prometheus.CounterVec
	sessionsIssued *prometheus.CounterVec
}

func New(version string) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_verifications_total",
			Help:      "Session token verifications by runtime and outcome.",
		}, []string{"runtime", "outcome"}),
		passwordChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "password_checks_total",
			Help:      "Login password checks by outcome.",
		}, []string{"outcome"}),
		sessionsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_issued_total",
			Help:      "Session tokens issued by flow.",
		}, []string{"flow"}),
	}

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Auth service build information.",
	}, []string{"version"})
	buildInfo.WithLabelValues(version).Set(1)

	m.reg.MustRegister(
		m.inFlight, m.requests, m.duration,
		m.verifications, m.passwordChecks, m.sessionsIssued,
		buildInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveVerification matches httpx.VerifyObserver.
func (m *Metrics) ObserveVerification(runtime string, err error) {
	m.verifications.WithLabelValues(runtime, sessionx.Reason(err)).Inc()
}

// ObservePasswordCheck matches service.AccountService.OnPasswordCheck.
func (m *Metrics) ObservePasswordCheck(outcome string) {
	m.passwordChecks.WithLabelValues(outcome).Inc()
}

// SessionIssued counts a token handed to a client by signup, login or a
// profile update.
func (m *Metrics) SessionIssued(flow string) {
	m.sessionsIssued.WithLabelValues(flow).Inc()
}

// Instrument records RPS, latency and in-flight requests. The route label is
// the matched ServeMux pattern so raw paths cannot blow up cardinality.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(sw.code)

		m.duration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(r.Method, route, status).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
