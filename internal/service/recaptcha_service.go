package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultRecaptchaVerifyURL is Google's server-side verification endpoint
const DefaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// VerificationResult is the verdict of the CAPTCHA service for one token
type VerificationResult struct {
	Success    bool
	Score      float64
	Hostname   string
	ErrorCodes []string
}

// Verifier checks a client-supplied CAPTCHA token
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*VerificationResult, error)
}

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service
func NewRecaptchaService(secretKey string, timeout time.Duration) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secretKey,
		verifyURL: DefaultRecaptchaVerifyURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithVerifyURL points the service at another siteverify-compatible endpoint
func (s *RecaptchaService) WithVerifyURL(u string) *RecaptchaService {
	s.verifyURL = u
	return s
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify asks the verification service whether token was solved by a human
func (s *RecaptchaService) Verify(ctx context.Context, token, remoteIP string) (*VerificationResult, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("reCAPTCHA secret key not configured")
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create reCAPTCHA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify reCAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reCAPTCHA API returned status %d", resp.StatusCode)
	}

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse reCAPTCHA response: %w", err)
	}

	return &VerificationResult{
		Success:    result.Success,
		Score:      result.Score,
		Hostname:   result.Hostname,
		ErrorCodes: result.ErrorCodes,
	}, nil
}
