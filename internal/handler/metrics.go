package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/nyayasetu/nyayasetu/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	for _, domain := range sortedKeys(snap.QueriesAccepted) {
		writeMetric(w, "nyayasetu_queries_accepted_total{domain=%q} %d\n", domain, snap.QueriesAccepted[domain])
	}
	for _, reason := range sortedKeys(snap.QueriesRejected) {
		writeMetric(w, "nyayasetu_queries_rejected_total{reason=%q} %d\n", reason, snap.QueriesRejected[reason])
	}
	for _, outcome := range sortedKeys(snap.UpstreamCalls) {
		writeMetric(w, "nyayasetu_upstream_calls_total{outcome=%q} %d\n", outcome, snap.UpstreamCalls[outcome])
	}
	writeMetric(w, "nyayasetu_upstream_duration_seconds_sum %.6f\n", snap.UpstreamDuration.Seconds())

	writeMetric(w, "nyayasetu_history_appended_total %d\n", snap.HistoryAppended)
	writeMetric(w, "nyayasetu_history_deleted_total %d\n", snap.HistoryDeleted)

	writeMetric(w, "nyayasetu_signups_total{status=\"success\"} %d\n", snap.Signups)
	writeMetric(w, "nyayasetu_signups_total{status=\"failed\"} %d\n", snap.SignupFailures)
	writeMetric(w, "nyayasetu_logins_total{status=\"success\"} %d\n", snap.Logins)
	writeMetric(w, "nyayasetu_logins_total{status=\"failed\"} %d\n", snap.LoginFailures)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// sortedKeys keeps label ordering stable across scrapes.
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
