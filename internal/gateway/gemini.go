// Package gateway forwards accepted queries to the Gemini
// generateContent API and extracts the answer text verbatim.
// One request, one response: no caching, no streaming, no retry.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client calls the Gemini REST API.
// The zero API key leaves the client unconfigured; Answer then fails
// with ErrNotConfigured instead of crashing the process.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *slog.Logger
}

// Options configures a Client.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a Gemini client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: NewHTTPClient(timeout),
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		model:      opts.Model,
		logger:     logger.With("component", "gateway.gemini"),
	}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Request/response shapes for the generateContent endpoint.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Answer sends the query to the upstream and returns the completion
// text. Callers must have applied the length and domain gates first.
func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: query}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed",
			slog.String("model", c.model),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	// Bounded read: completion responses are small.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("upstream rate limited",
			slog.String("model", c.model),
			slog.Duration("duration", time.Since(start)),
		)
		return "", ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("upstream error status",
			slog.String("model", c.model),
			slog.Int("status_code", resp.StatusCode),
		)
		return "", fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}

	answer := extractText(parsed)
	if answer == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstreamUnavailable)
	}

	c.logger.Info("completion received",
		slog.String("model", c.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("answer_len", len(answer)),
	)

	return answer, nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
