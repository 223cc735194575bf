package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of lead form submissions",
		},
		[]string{"outcome"}, // created, existing, rejected
	)

	earlyAccessLeads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "early_access_leads_total",
			Help: "Leads who asked to be notified first about the SaaS",
		},
	)

	workflowsSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workflows_synced_total",
			Help: "Catalog rows added by the reconciliation endpoint",
		},
	)

	workflowDownloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workflow_downloads_total",
			Help: "Workflow file downloads served",
		},
		[]string{"status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCaptured(outcome string) {
	leadsCaptured.WithLabelValues(outcome).Inc()
}

func RecordEarlyAccessLead() {
	earlyAccessLeads.Inc()
}

func RecordWorkflowsSynced(added int) {
	workflowsSynced.Add(float64(added))
}

func RecordWorkflowDownload(status string) {
	workflowDownloads.WithLabelValues(status).Inc()
}
