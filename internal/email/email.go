// Package email sends transactional mail over SMTP.
// With no host configured the sender runs in mock mode and logs the
// message instead, so development setups work without a mail account.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
)

// Sender delivers password-reset mail.
type Sender struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSender creates an SMTP sender.
func NewSender(host, port, username, password, from string, logger *slog.Logger) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger.With("component", "email"),
	}
}

const resetTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Password reset</h2>
        <p>Hi {{.Name}},</p>
        <p>We received a request to reset your password. The link below
        is valid for a limited time and can be used once.</p>
        <p><a href="{{.Link}}">Reset your password</a></p>
        <p>If you didn't request this, you can safely ignore this email.</p>
    </div>
</body>
</html>
`

var resetTmpl = template.Must(template.New("reset").Parse(resetTemplate))

// SendPasswordReset emails a reset link to the given address.
func (s *Sender) SendPasswordReset(to, name, link string) error {
	var body bytes.Buffer
	if err := resetTmpl.Execute(&body, map[string]string{"Name": name, "Link": link}); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	headers := map[string]string{
		"From":         s.from,
		"To":           to,
		"Subject":      "Reset your password",
		"MIME-Version": "1.0",
		"Content-Type": `text/html; charset="UTF-8"`,
	}

	var msg bytes.Buffer
	for k, v := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", k, v)
	}
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	if s.host == "" {
		// Mock mode. Never log the link itself beyond debug level.
		s.logger.Info("mock email", slog.String("to", to), slog.String("subject", headers["Subject"]))
		s.logger.Debug("mock email link", slog.String("link", link))
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	smtpAuth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, smtpAuth, s.from, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
