package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mjbconsultora/website/internal/api/sanitization"
	"github.com/mjbconsultora/website/internal/api/validation"
	"github.com/mjbconsultora/website/internal/config"
	"github.com/mjbconsultora/website/internal/logging"
)

var tracer = otel.Tracer("github.com/mjbconsultora/website/internal/service")

// Submission is one contact form post. It lives for a single request.
type Submission struct {
	Name         string `validate:"required,max=100"`
	Email        string `validate:"required,email,max=254"`
	Phone        string `validate:"omitempty,max=100"`
	Message      string `validate:"required,max=5000"`
	Honeypot     string
	CaptchaToken string
	RemoteIP     string
}

// Normalize trims surrounding whitespace from every user-supplied field
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = sanitization.SingleLine(sanitization.StripControl(s.Phone))
	s.Message = strings.TrimSpace(sanitization.StripControl(s.Message))
	s.CaptchaToken = strings.TrimSpace(s.CaptchaToken)
}

// ContactOptions configures a ContactService
type ContactOptions struct {
	From string
	To   string
	// CaptchaEnabled requires a token verified by the Verifier on every submission
	CaptchaEnabled bool
	// MinScore rejects reCAPTCHA v3 verdicts scoring below it. Zero disables the check.
	MinScore float64
	// Timeout bounds each outbound call
	Timeout time.Duration
}

// ContactService validates a submission and relays it to the mail provider
type ContactService struct {
	verifier Verifier
	mailer   Mailer
	opts     ContactOptions
	validate *validator.Validate
}

// NewContactService creates a contact service. verifier may be nil when CAPTCHA is disabled.
func NewContactService(verifier Verifier, mailer Mailer, opts ContactOptions) *ContactService {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &ContactService{
		verifier: verifier,
		mailer:   mailer,
		opts:     opts,
		validate: validation.New(),
	}
}

// NewContactServiceFromConfig wires the configured mail provider and, when a
// secret is set, the reCAPTCHA verifier
func NewContactServiceFromConfig(cfg *config.Config) (*ContactService, error) {
	mailer, err := NewMailer(cfg)
	if err != nil {
		return nil, err
	}

	var verifier Verifier
	if cfg.CaptchaEnabled() {
		verifier = NewRecaptchaService(cfg.RecaptchaSecretKey, cfg.OutboundTimeout)
	}

	return NewContactService(verifier, mailer, ContactOptions{
		From:           cfg.ContactFrom,
		To:             cfg.ContactTo,
		CaptchaEnabled: cfg.CaptchaEnabled(),
		MinScore:       cfg.RecaptchaMinScore,
		Timeout:        cfg.OutboundTimeout,
	}), nil
}

// CaptchaEnabled reports whether submissions need a verified token
func (s *ContactService) CaptchaEnabled() bool {
	return s.opts.CaptchaEnabled
}

// Submit runs the honeypot, validation and CAPTCHA checks in order, then sends
// exactly one notification. Nothing is retried.
func (s *ContactService) Submit(ctx context.Context, sub *Submission) error {
	ctx, span := tracer.Start(ctx, "contact.submit")
	defer span.End()

	logger := logging.GetGlobalLogger()

	if strings.TrimSpace(sub.Honeypot) != "" {
		logger.Warn("Contact: honeypot triggered from %s", sub.RemoteIP)
		span.SetAttributes(attribute.String("contact.rejected", "honeypot"))
		return ErrSpamDetected
	}

	sub.Normalize()

	if err := s.validate.Struct(sub); err != nil {
		span.SetAttributes(attribute.String("contact.rejected", "validation"))
		return toValidationError(err)
	}

	if s.opts.CaptchaEnabled {
		if err := s.checkCaptcha(ctx, sub); err != nil {
			return err
		}
	}

	msg, err := ComposeMessage(s.opts.From, s.opts.To, sub)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "compose failed")
		return err
	}

	if err := s.send(ctx, msg); err != nil {
		logger.Error("Contact: delivery via %s failed: %v", s.mailer.Name(), err)
		return err
	}

	logger.Info("Contact: submission from %s delivered via %s", sub.RemoteIP, s.mailer.Name())
	return nil
}

func (s *ContactService) checkCaptcha(ctx context.Context, sub *Submission) error {
	ctx, span := tracer.Start(ctx, "contact.captcha")
	defer span.End()

	if sub.CaptchaToken == "" {
		span.SetAttributes(attribute.String("contact.rejected", "captcha_missing"))
		return ErrCaptchaInvalid
	}
	if s.verifier == nil {
		return &CaptchaServiceError{Err: errors.New("captcha verifier not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	result, err := s.verifier.Verify(ctx, sub.CaptchaToken, sub.RemoteIP)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "verification unavailable")
		return &CaptchaServiceError{Err: err}
	}

	span.SetAttributes(
		attribute.Bool("captcha.success", result.Success),
		attribute.Float64("captcha.score", result.Score),
	)

	if !result.Success {
		logging.GetGlobalLogger().Warn("Contact: captcha rejected from %s: %v", sub.RemoteIP, result.ErrorCodes)
		return ErrCaptchaInvalid
	}
	if s.opts.MinScore > 0 && result.Score < s.opts.MinScore {
		logging.GetGlobalLogger().Warn("Contact: captcha score too low from %s: %.2f < %.2f", sub.RemoteIP, result.Score, s.opts.MinScore)
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *ContactService) send(ctx context.Context, msg *EmailMessage) error {
	ctx, span := tracer.Start(ctx, "contact.send")
	defer span.End()
	span.SetAttributes(attribute.String("mail.provider", s.mailer.Name()))

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if err := s.mailer.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return &EmailServiceError{Provider: s.mailer.Name(), Err: err}
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: strings.ToLower(fe.Field()),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return &ValidationError{Fields: fields}
}
