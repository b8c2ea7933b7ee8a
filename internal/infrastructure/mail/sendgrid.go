package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// Config captures the SendGrid sender settings.
type Config struct {
	APIKey      string
	FromName    string
	FromAddress string
	// Sandbox validates the payload against the SendGrid API without
	// delivering anything. Used in development.
	Sandbox bool
}

// SendGridMailer delivers email through the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
	cfg    Config
}

func NewSendGridMailer(cfg Config) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(cfg.APIKey), cfg: cfg}
}

func (m *SendGridMailer) Send(ctx context.Context, email ports.Email) error {
	from := sgmail.NewEmail(m.cfg.FromName, m.cfg.FromAddress)
	to := sgmail.NewEmail("", email.To)
	msg := sgmail.NewSingleEmail(from, email.Subject, to, email.TextBody, email.HTMLBody)

	if m.cfg.Sandbox {
		ms := sgmail.NewMailSettings()
		ms.SetSandboxMode(sgmail.NewSetting(true))
		msg.MailSettings = ms
	}

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
