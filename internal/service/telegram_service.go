package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
)

// DefaultTelegramAPIBase is the Bot API root
const DefaultTelegramAPIBase = "https://api.telegram.org"

// TelegramMailer posts notifications to a Telegram chat instead of a mailbox
type TelegramMailer struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

// NewTelegramMailer creates a new Telegram-backed mailer
func NewTelegramMailer(botToken, chatID string, client *http.Client) (*TelegramMailer, error) {
	if botToken == "" || chatID == "" {
		return nil, fmt.Errorf("telegram bot token or chat ID not configured")
	}
	return &TelegramMailer{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  DefaultTelegramAPIBase,
		client:   client,
	}, nil
}

// WithAPIBase points the mailer at another Bot API root
func (s *TelegramMailer) WithAPIBase(base string) *TelegramMailer {
	s.apiBase = base
	return s
}

func (s *TelegramMailer) Name() string {
	return "telegram"
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// telegramResponse is the envelope of every Bot API answer
type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts the subject and plain-text body of msg to the configured chat
func (s *TelegramMailer) Send(ctx context.Context, msg *EmailMessage) error {
	// Telegram HTML mode only knows a handful of tags, so the text body is used
	text := fmt.Sprintf("🆕 <b>%s</b>\n\n%s", html.EscapeString(msg.Subject), html.EscapeString(msg.Text))

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// The request URL embeds the bot token, keep it out of the error
		return fmt.Errorf("failed to send telegram message: %w", ctxErrOr(ctx, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body telegramResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Description != "" {
			return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, body.Description)
		}
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}

// ctxErrOr prefers the context error, which never contains the request URL
func ctxErrOr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if uerr, ok := err.(interface{ Unwrap() error }); ok && uerr.Unwrap() != nil {
		return uerr.Unwrap()
	}
	return err
}
