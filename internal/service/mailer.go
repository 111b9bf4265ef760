package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mjbconsultora/website/internal/config"
)

// Mailer delivers a composed notification
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
	Name() string
}

// NewMailer builds the provider selected by MAIL_PROVIDER
func NewMailer(cfg *config.Config) (Mailer, error) {
	httpClient := &http.Client{Timeout: cfg.OutboundTimeout}

	switch cfg.MailProvider {
	case config.MailProviderResend:
		return NewResendMailer(cfg.ResendAPIKey, httpClient)
	case config.MailProviderMailgun:
		return NewMailgunMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
	case config.MailProviderTelegram:
		return NewTelegramMailer(cfg.TelegramBotToken, cfg.TelegramChatID, httpClient)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}
