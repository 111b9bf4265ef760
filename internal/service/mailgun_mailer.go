package service

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunMailer sends notifications via Mailgun API.
// This is a thin wrapper around the Mailgun SDK.
type MailgunMailer struct {
	client *mailgun.MailgunImpl
}

// NewMailgunMailer creates a Mailgun-backed mailer. apiBase is optional and
// selects another region, e.g. mailgun.APIBaseEU.
func NewMailgunMailer(domain, apiKey, apiBase string) (*MailgunMailer, error) {
	if domain == "" {
		return nil, fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("MAILGUN_API_KEY is required")
	}

	client := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}

	return &MailgunMailer{client: client}, nil
}

func (m *MailgunMailer) Name() string {
	return "mailgun"
}

func (m *MailgunMailer) Send(ctx context.Context, msg *EmailMessage) error {
	message := m.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}

	if _, _, err := m.client.Send(ctx, message); err != nil {
		return err
	}
	return nil
}
