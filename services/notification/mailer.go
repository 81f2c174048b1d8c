package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"intothestar/config"
	"intothestar/models"

	"go.uber.org/zap"
)

const fromDisplayName = "INTO THE STAR"

// SMTPMailer sends HTML email over SMTP with STARTTLS. When no app
// password is configured it runs in log-only mode so local setups work
// without credentials.
type SMTPMailer struct {
	logger *zap.Logger
}

func NewSMTPMailer(logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{logger: logger}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SMTPAppPassword == "" {
		m.logger.Info("SMTP password not set, mocking email send",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", fromDisplayName, cfg.SMTPEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.SMTPEmail, cfg.SMTPAppPassword, cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, cfg.SMTPEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *SMTPMailer) SendGuestConfirmation(ctx context.Context, p models.GuestConfirmationPayload) error {
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Dear %s,</p>
	<p>Hoping an amazing experience for the session.</p>
	<p>Your session is confirmed for <strong>%s at %s (%s)</strong>.</p>
	<p>Please note: Be on time for the session to make the most out of your reading.</p>
	<br>
	<p>Warm regards,<br>INTO THE STAR Team</p>
</body>
</html>`, p.FirstName, p.SessionDate, p.SessionTime, p.TimeZone)

	return m.send(p.Email, "Session Booking Confirmation - INTO THE STAR", body)
}

func (m *SMTPMailer) SendAdminAlert(ctx context.Context, p models.AdminAlertPayload) error {
	heading := "New Booking Received!"
	if p.Reason != "" {
		heading = "Booking Needs Attention"
	}

	var extra string
	if p.Reason != "" {
		extra = fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", p.Reason)
	}

	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h3>%s</h3>
	<p><strong>Name:</strong> %s %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Session:</strong> %s at %s (%s)</p>
	<p><strong>Amount Paid:</strong> %.2f %s</p>
	<p><strong>Booking ID:</strong> %s</p>
	%s
</body>
</html>`, heading, p.FirstName, p.LastName, p.Email, p.SessionDate, p.SessionTime,
		p.TimeZone, p.AmountPaid, p.CurrencyPaid, p.BookingID, extra)

	return m.send(config.AppConfig.AdminEmail, "New Session Booking Alert", body)
}
