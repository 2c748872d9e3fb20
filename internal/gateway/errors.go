package gateway

import "errors"

// Sentinel errors for upstream completion calls.
var (
	// ErrNotConfigured means no API key was supplied at startup.
	// Callers report a configuration error; the process keeps running.
	ErrNotConfigured = errors.New("generative upstream not configured")
	// ErrRateLimited means the upstream returned 429.
	// The request is terminal: no in-process retry or backoff.
	ErrRateLimited = errors.New("generative upstream rate limited")
	// ErrUpstreamUnavailable covers network failures, 5xx responses
	// and responses the client cannot parse.
	ErrUpstreamUnavailable = errors.New("generative upstream unavailable")
)
