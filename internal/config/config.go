package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Captcha provider names accepted in CAPTCHA_PROVIDER.
const (
	ProviderRecaptcha = "recaptcha"
	ProviderHCaptcha  = "hcaptcha"
)

// Config holds all configuration for the application.
// It is built once at process start and treated as read-only afterwards.
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Captcha verification. The provider decides which secret, verify
	// endpoint and payload token key are in effect.
	CaptchaProvider    string `env:"CAPTCHA_PROVIDER" envDefault:"recaptcha"`
	RecaptchaSecretKey string `env:"RECAPTCHA_SECRET_KEY"`
	HCaptchaSecretKey  string `env:"HCAPTCHA_SECRET_KEY"`

	// Email delivery
	ResendAPIKey string `env:"RESEND_API_KEY"`

	// Submission notification addressing
	ContactFrom       string   `env:"CONTACT_FROM" envDefault:"Automotive Consulting <noreply@automotiveconsulting.cl>"`
	ContactRecipients []string `env:"CONTACT_RECIPIENTS" envSeparator:"," envDefault:"roco.solange@automotiveconsulting.cl,maravena@eserp.cl"`
	ContactCC         []string `env:"CONTACT_CC" envSeparator:","`

	// Required-field policy for the default form type
	RequiredFields []string `env:"CONTACT_REQUIRED_FIELDS" envSeparator:"," envDefault:"name,email,message"`
}

// Load loads the configuration from environment variables and .env files.
func Load() (*Config, error) {
	// Load the most specific .env file that exists. godotenv never
	// overwrites variables already present in the environment.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	return cfg, nil
}

// CaptchaSecret returns the secret for the configured captcha provider.
func (c *Config) CaptchaSecret() string {
	if c.CaptchaProvider == ProviderHCaptcha {
		return c.HCaptchaSecretKey
	}
	return c.RecaptchaSecretKey
}

// captchaSecretVar names the environment variable holding the active
// provider's secret, for diagnostics.
func (c *Config) captchaSecretVar() string {
	if c.CaptchaProvider == ProviderHCaptcha {
		return "HCAPTCHA_SECRET_KEY"
	}
	return "RECAPTCHA_SECRET_KEY"
}

// MissingSubmissionSecrets returns the names of the credentials the
// submission pipeline needs but that are absent from configuration.
// An empty result means the pipeline may run.
func (c *Config) MissingSubmissionSecrets() []string {
	var missing []string
	if c.CaptchaSecret() == "" {
		missing = append(missing, c.captchaSecretVar())
	}
	if c.ResendAPIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}
	return missing
}
