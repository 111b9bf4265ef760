package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends notifications through the Resend API
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a Resend-backed mailer
func NewResendMailer(apiKey string, httpClient *http.Client) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required")
	}
	return &ResendMailer{client: resend.NewCustomClient(httpClient, apiKey)}, nil
}

// WithBaseURL points the client at another Resend-compatible API
func (m *ResendMailer) WithBaseURL(raw string) (*ResendMailer, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	m.client.BaseURL = u
	return m, nil
}

func (m *ResendMailer) Name() string {
	return "resend"
}

// Send delivers msg and returns the provider error unchanged on failure
func (m *ResendMailer) Send(ctx context.Context, msg *EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return err
	}
	return nil
}
