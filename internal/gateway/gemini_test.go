package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Options{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, testLogger())
}

func TestClient_Answer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-Goog-Api-Key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		if r.URL.Path != "/v1beta/models/gemini-1.5-flash:generateContent" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Article 21 protects "},{"text":"life and liberty."}]}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	answer, err := c.Answer(context.Background(), "what is article 21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Article 21 protects life and liberty."
	if answer != want {
		t.Errorf("expected %q, got %q", want, answer)
	}
}

func TestClient_Answer_NotConfigured(t *testing.T) {
	t.Parallel()

	c := NewClient(Options{Model: "gemini-1.5-flash", BaseURL: "http://localhost:1"}, testLogger())

	if c.Configured() {
		t.Error("client without API key should not report configured")
	}

	_, err := c.Answer(context.Background(), "what is article 21")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_Answer_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Answer(context.Background(), "what is article 21")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestClient_Answer_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Answer(context.Background(), "what is article 21")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Answer_EmptyCompletion(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Answer(context.Background(), "what is article 21")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable for empty completion, got %v", err)
	}
}

func TestClient_Answer_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := newTestClient("http://127.0.0.1:1")

	_, err := c.Answer(context.Background(), "what is article 21")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
