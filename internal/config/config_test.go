package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "resend")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("RECAPTCHA_SECRET_KEY", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("ENV", "development")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, MailProviderResend, cfg.MailProvider)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://v2.mjbconsultora.com.ar", cfg.AllowedOrigin)
	assert.Equal(t, "contactform@mjbconsultora.com.ar", cfg.ContactFrom)
	assert.Equal(t, "info@mjbconsultora.com.ar", cfg.ContactTo)
	assert.Equal(t, 10*time.Second, cfg.OutboundTimeout)
	assert.Equal(t, "./logs/api.log", cfg.LogFile)
	assert.False(t, cfg.CaptchaEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "Mailgun")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_API_KEY", "key-abc")
	t.Setenv("RECAPTCHA_SECRET_KEY", "secret")
	t.Setenv("RECAPTCHA_MIN_SCORE", "0.5")
	t.Setenv("OUTBOUND_TIMEOUT", "3s")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_FILE", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, MailProviderMailgun, cfg.MailProvider)
	assert.True(t, cfg.CaptchaEnabled())
	assert.Equal(t, 0.5, cfg.RecaptchaMinScore)
	assert.Equal(t, 3*time.Second, cfg.OutboundTimeout)
	assert.Equal(t, "/app/logs/api.log", cfg.LogFile)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			MailProvider:    MailProviderResend,
			ResendAPIKey:    "re_test",
			ContactFrom:     "from@example.com",
			ContactTo:       "to@example.com",
			AllowedOrigin:   "https://example.com",
			OutboundTimeout: time.Second,
			RateLimitRPS:    1,
			RateLimitBurst:  5,
			MaxBodyBytes:    1024,
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing resend key", func(c *Config) { c.ResendAPIKey = "" }, "RESEND_API_KEY is required"},
		{"unknown provider", func(c *Config) { c.MailProvider = "smtp" }, `unknown MAIL_PROVIDER "smtp"`},
		{"mailgun without domain", func(c *Config) { c.MailProvider = MailProviderMailgun; c.MailgunAPIKey = "k" }, "MAILGUN_DOMAIN and MAILGUN_API_KEY"},
		{"telegram without chat", func(c *Config) { c.MailProvider = MailProviderTelegram; c.TelegramBotToken = "t" }, "TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID"},
		{"empty recipient", func(c *Config) { c.ContactTo = "" }, "CONTACT_FROM and CONTACT_TO"},
		{"score out of range", func(c *Config) { c.RecaptchaMinScore = 1.5 }, "RECAPTCHA_MIN_SCORE"},
		{"zero timeout", func(c *Config) { c.OutboundTimeout = 0 }, "OUTBOUND_TIMEOUT"},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, "RATE_LIMIT_RPS and RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
