package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/mayarosales/cakecafe-backend/pkg/config"
)

var errAPIKeyRequired = errors.New("resend api key is required")

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type resendMailer struct {
	client *resend.Client
	from   string
}

// New returns a Mailer backed by Resend.
func New(cfg config.ResendConfig) (Mailer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   cfg.From,
	}, nil
}

func (m *resendMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	return err
}
