package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncQueryAccepted is a no-op.
func (n *NoopRecorder) IncQueryAccepted(domain string) {}

// IncQueryRejected is a no-op.
func (n *NoopRecorder) IncQueryRejected(reason string) {}

// IncUpstreamCall is a no-op.
func (n *NoopRecorder) IncUpstreamCall(outcome string) {}

// ObserveUpstreamDuration is a no-op.
func (n *NoopRecorder) ObserveUpstreamDuration(duration time.Duration) {}

// IncHistoryAppended is a no-op.
func (n *NoopRecorder) IncHistoryAppended() {}

// IncHistoryDeleted is a no-op.
func (n *NoopRecorder) IncHistoryDeleted() {}

// IncSignup is a no-op.
func (n *NoopRecorder) IncSignup(success bool) {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin(success bool) {}
