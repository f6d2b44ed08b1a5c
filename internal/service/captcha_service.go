package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/automotiveconsulting/site-api/internal/config"
)

const (
	recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	hcaptchaVerifyURL  = "https://api.hcaptcha.com/siteverify"

	recaptchaTokenField = "g-recaptcha-response"
	hcaptchaTokenField  = "h-captcha-response"
)

// Verdict is the outcome of a siteverify call. Only the boolean gates
// dispatch; any score the provider returns is ignored.
type Verdict struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// CaptchaVerifier validates a challenge response token against an
// external verification service.
type CaptchaVerifier interface {
	// TokenField is the payload key the token travels under.
	TokenField() string
	// Verify calls the verification service. A non-nil error means the
	// service could not be reached or answered garbage; a negative
	// verdict comes back as Success=false with no error.
	Verify(ctx context.Context, token string) (*Verdict, error)
}

// CaptchaService verifies tokens against reCAPTCHA or hCaptcha,
// depending on the configured provider.
type CaptchaService struct {
	secret     string
	tokenField string
	verifyURL  string
	client     *http.Client
}

// NewCaptchaService creates a verifier for the given provider. Unknown
// provider names fall back to reCAPTCHA.
func NewCaptchaService(provider, secret string) *CaptchaService {
	s := &CaptchaService{
		secret:     secret,
		tokenField: recaptchaTokenField,
		verifyURL:  recaptchaVerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	if provider == config.ProviderHCaptcha {
		s.tokenField = hcaptchaTokenField
		s.verifyURL = hcaptchaVerifyURL
	}
	return s
}

func (s *CaptchaService) TokenField() string {
	return s.tokenField
}

// Verify posts the secret and token form-encoded to the provider's
// siteverify endpoint and decodes the verdict.
func (s *CaptchaService) Verify(ctx context.Context, token string) (*Verdict, error) {
	form := url.Values{}
	form.Set("secret", s.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach captcha service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("captcha service returned status %d", resp.StatusCode)
	}

	var verdict Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("failed to parse captcha response: %w", err)
	}

	return &verdict, nil
}
