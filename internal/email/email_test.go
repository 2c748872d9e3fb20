package email

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSender_MockMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	s := NewSender("", "587", "", "", "no-reply@nyayasetu.app", logger)

	err := s.SendPasswordReset("asha@example.com", "Asha", "https://app.example.com/reset-password?token=abc")
	if err != nil {
		t.Fatalf("mock mode should not fail: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "mock email") {
		t.Errorf("expected mock email log entry, got %s", out)
	}
	// At default level the reset link must not be logged.
	if strings.Contains(out, "token=abc") {
		t.Error("reset link must not appear in info-level logs")
	}
}

func TestSender_MockMode_DebugLogsLink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewSender("", "587", "", "", "no-reply@nyayasetu.app", logger)

	if err := s.SendPasswordReset("asha@example.com", "Asha", "https://app.example.com/reset-password?token=abc"); err != nil {
		t.Fatalf("mock mode should not fail: %v", err)
	}

	if !strings.Contains(buf.String(), "token=abc") {
		t.Error("expected reset link at debug level")
	}
}

func TestResetTemplate_EscapesName(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	err := resetTmpl.Execute(&body, map[string]string{
		"Name": `<script>alert(1)</script>`,
		"Link": "https://app.example.com/reset",
	})
	if err != nil {
		t.Fatalf("execute template: %v", err)
	}

	if strings.Contains(body.String(), "<script>") {
		t.Error("template must escape HTML in the recipient name")
	}
}
