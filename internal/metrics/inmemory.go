package metrics

import (
	"sync"
	"time"
)

// InMemoryRecorder implements Recorder with in-process counters.
// Useful for tests and for the readiness of a metrics endpoint later.
type InMemoryRecorder struct {
	mu sync.Mutex

	queriesAccepted  map[string]int64
	queriesRejected  map[string]int64
	upstreamCalls    map[string]int64
	upstreamDuration time.Duration
	historyAppended  int64
	historyDeleted   int64
	signups          int64
	signupFailures   int64
	logins           int64
	loginFailures    int64
}

// NewInMemory returns a Recorder backed by in-process counters.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		queriesAccepted: make(map[string]int64),
		queriesRejected: make(map[string]int64),
		upstreamCalls:   make(map[string]int64),
	}
}

// IncQueryAccepted counts an accepted query by domain.
func (m *InMemoryRecorder) IncQueryAccepted(domain string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queriesAccepted[domain]++
}

// IncQueryRejected counts a rejected query by reason.
func (m *InMemoryRecorder) IncQueryRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queriesRejected[reason]++
}

// IncUpstreamCall counts an upstream call by outcome.
func (m *InMemoryRecorder) IncUpstreamCall(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamCalls[outcome]++
}

// ObserveUpstreamDuration accumulates upstream latency.
func (m *InMemoryRecorder) ObserveUpstreamDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamDuration += duration
}

// IncHistoryAppended counts a history append.
func (m *InMemoryRecorder) IncHistoryAppended() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyAppended++
}

// IncHistoryDeleted counts a history delete.
func (m *InMemoryRecorder) IncHistoryDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyDeleted++
}

// IncSignup counts a signup attempt.
func (m *InMemoryRecorder) IncSignup(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.signups++
	} else {
		m.signupFailures++
	}
}

// IncLogin counts a login attempt.
func (m *InMemoryRecorder) IncLogin(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.logins++
	} else {
		m.loginFailures++
	}
}

// Snapshot returns a copy of the current counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	accepted := make(map[string]int64, len(m.queriesAccepted))
	for k, v := range m.queriesAccepted {
		accepted[k] = v
	}
	rejected := make(map[string]int64, len(m.queriesRejected))
	for k, v := range m.queriesRejected {
		rejected[k] = v
	}
	upstream := make(map[string]int64, len(m.upstreamCalls))
	for k, v := range m.upstreamCalls {
		upstream[k] = v
	}

	return Snapshot{
		QueriesAccepted:  accepted,
		QueriesRejected:  rejected,
		UpstreamCalls:    upstream,
		UpstreamDuration: m.upstreamDuration,
		HistoryAppended:  m.historyAppended,
		HistoryDeleted:   m.historyDeleted,
		Signups:          m.signups,
		SignupFailures:   m.signupFailures,
		Logins:           m.logins,
		LoginFailures:    m.loginFailures,
	}
}
