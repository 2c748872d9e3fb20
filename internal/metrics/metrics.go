// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Rejection reasons for chatbot queries.
const (
	RejectTooShort = "too_short"
	RejectNotLegal = "not_legal"
)

// Upstream call outcomes.
const (
	UpstreamSuccess       = "success"
	UpstreamRateLimited   = "rate_limited"
	UpstreamFailed        = "failed"
	UpstreamNotConfigured = "not_configured"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Chatbot pipeline metrics
	IncQueryAccepted(domain string)
	IncQueryRejected(reason string)
	IncUpstreamCall(outcome string)
	ObserveUpstreamDuration(duration time.Duration)

	// Chat history metrics
	IncHistoryAppended()
	IncHistoryDeleted()

	// Auth metrics
	IncSignup(success bool)
	IncLogin(success bool)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot is a point-in-time view of collected metrics.
type Snapshot struct {
	QueriesAccepted  map[string]int64
	QueriesRejected  map[string]int64
	UpstreamCalls    map[string]int64
	UpstreamDuration time.Duration
	HistoryAppended  int64
	HistoryDeleted   int64
	Signups          int64
	SignupFailures   int64
	Logins           int64
	LoginFailures    int64
}
