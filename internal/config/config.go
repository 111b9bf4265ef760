package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Mail providers
const (
	MailProviderResend   = "resend"
	MailProviderMailgun  = "mailgun"
	MailProviderTelegram = "telegram"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Peers allowed to set X-Forwarded-For / X-Real-IP
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Only this origin may call the API from a browser
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"https://v2.mjbconsultora.com.ar"`

	// Mail Configuration
	MailProvider     string `env:"MAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey     string `env:"RESEND_API_KEY"`
	MailgunDomain    string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey    string `env:"MAILGUN_API_KEY"`
	MailgunAPIBase   string `env:"MAILGUN_API_BASE"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`
	ContactFrom      string `env:"CONTACT_FROM" envDefault:"contactform@mjbconsultora.com.ar"`
	ContactTo        string `env:"CONTACT_TO" envDefault:"info@mjbconsultora.com.ar"`

	// reCAPTCHA Configuration. An empty secret disables the check.
	RecaptchaSecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaMinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0"`

	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"10s"`

	// Abuse limits for the public API
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"5"`
	MaxBodyBytes   int64   `env:"MAX_BODY_BYTES" envDefault:"65536"`

	// Site Configuration
	ReviewsFile string `env:"REVIEWS_FILE" envDefault:"assets/data/reseñas.json"`
	StaticDir   string `env:"STATIC_DIR"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"mjb-website"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.MailProvider = strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	var errs []error

	switch c.MailProvider {
	case MailProviderResend:
		if c.ResendAPIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required when MAIL_PROVIDER=resend"))
		}
	case MailProviderMailgun:
		if c.MailgunDomain == "" || c.MailgunAPIKey == "" {
			errs = append(errs, errors.New("MAILGUN_DOMAIN and MAILGUN_API_KEY are required when MAIL_PROVIDER=mailgun"))
		}
	case MailProviderTelegram:
		if c.TelegramBotToken == "" || c.TelegramChatID == "" {
			errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required when MAIL_PROVIDER=telegram"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_PROVIDER %q", c.MailProvider))
	}

	if c.ContactFrom == "" || c.ContactTo == "" {
		errs = append(errs, errors.New("CONTACT_FROM and CONTACT_TO must not be empty"))
	}
	if c.AllowedOrigin == "" {
		errs = append(errs, errors.New("ALLOWED_ORIGIN must not be empty"))
	}
	if c.RecaptchaMinScore < 0 || c.RecaptchaMinScore > 1 {
		errs = append(errs, fmt.Errorf("RECAPTCHA_MIN_SCORE must be within [0,1], got %v", c.RecaptchaMinScore))
	}
	if c.OutboundTimeout <= 0 {
		errs = append(errs, errors.New("OUTBOUND_TIMEOUT must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction reports whether ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CaptchaEnabled reports whether submissions must carry a verified reCAPTCHA token
func (c *Config) CaptchaEnabled() bool {
	return c.RecaptchaSecretKey != ""
}
