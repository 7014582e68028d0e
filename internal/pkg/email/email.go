package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendRegistrationReceived(toEmail, toName string) error
	SendStatusChanged(toEmail, toName, status, remarks string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// Configured reports whether mail can actually be sent.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	send   func(toEmail, subject, htmlBody string) error
}

// NewEmailService creates a new EmailService. Without SMTP credentials mails
// are logged instead of sent.
func NewEmailService(config SMTPConfig, logger zerolog.Logger) *EmailServiceImpl {
	s := &EmailServiceImpl{config: config, logger: logger}
	s.send = s.sendHTMLEmail
	return s
}

// SendRegistrationReceived confirms a student self-registration.
func (s *EmailServiceImpl) SendRegistrationReceived(toEmail, toName string) error {
	subject := "Registration received - Placement Portal"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Thank you for registering</h2>
				<p>Hello %s,</p>
				<p>Your registration on the Placement Portal has been received and is awaiting approval by the Training &amp; Placement Cell.</p>
				<p>You will receive another email once your account has been reviewed.</p>
				<p>Regards,<br>Training &amp; Placement Cell</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(toName))

	return s.deliver(toEmail, subject, body)
}

// SendStatusChanged tells a student their registration status changed.
func (s *EmailServiceImpl) SendStatusChanged(toEmail, toName, status, remarks string) error {
	subject := "Your registration is " + status + " - Placement Portal"

	extra := ""
	if strings.TrimSpace(remarks) != "" {
		extra = fmt.Sprintf("<p>Remarks: %s</p>", html.EscapeString(remarks))
	}
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Registration %s</h2>
				<p>Hello %s,</p>
				<p>Your Placement Portal registration status is now <strong>%s</strong>.</p>
				%s
				<p>Regards,<br>Training &amp; Placement Cell</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(status), html.EscapeString(toName), html.EscapeString(status), extra)

	return s.deliver(toEmail, subject, body)
}

func (s *EmailServiceImpl) deliver(toEmail, subject, body string) error {
	if !s.config.Configured() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}
	return s.send(toEmail, subject, body)
}

// buildMessage renders headers and body in a stable header order.
func (s *EmailServiceImpl) buildMessage(toEmail, subject, htmlBody string) string {
	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\r\n", k, headers[k])
	}
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return b.String()
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	message := s.buildMessage(toEmail, subject, htmlBody)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
