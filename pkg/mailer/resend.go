package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/masjid-bouraoui/masjid-api/pkg/config"
)

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a sender with the configured API key and from identity.
func NewResendSender(cfg config.MailConfig) *ResendSender {
	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		from:   from,
	}
}

// Send delivers one message to one recipient.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
	}
	if msg.HTML != "" {
		params.Html = msg.HTML
	} else {
		params.Text = msg.Text
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send to %s: %w", msg.To, err)
	}
	return nil
}
