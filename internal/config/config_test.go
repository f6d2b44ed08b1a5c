package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderRecaptcha, cfg.CaptchaProvider)
	assert.Equal(t, []string{"name", "email", "message"}, cfg.RequiredFields)
	assert.NotEmpty(t, cfg.ContactRecipients)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestCaptchaSecretFollowsProvider(t *testing.T) {
	cfg := &Config{
		CaptchaProvider:    ProviderRecaptcha,
		RecaptchaSecretKey: "re-secret",
		HCaptchaSecretKey:  "h-secret",
	}
	assert.Equal(t, "re-secret", cfg.CaptchaSecret())

	cfg.CaptchaProvider = ProviderHCaptcha
	assert.Equal(t, "h-secret", cfg.CaptchaSecret())
}

func TestMissingSubmissionSecrets(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "all present",
			cfg: Config{
				CaptchaProvider:    ProviderRecaptcha,
				RecaptchaSecretKey: "x",
				ResendAPIKey:       "y",
			},
			want: nil,
		},
		{
			name: "captcha secret missing",
			cfg: Config{
				CaptchaProvider: ProviderRecaptcha,
				ResendAPIKey:    "y",
			},
			want: []string{"RECAPTCHA_SECRET_KEY"},
		},
		{
			name: "hcaptcha secret missing for hcaptcha provider",
			cfg: Config{
				CaptchaProvider:    ProviderHCaptcha,
				RecaptchaSecretKey: "x",
				ResendAPIKey:       "y",
			},
			want: []string{"HCAPTCHA_SECRET_KEY"},
		},
		{
			name: "everything missing",
			cfg:  Config{CaptchaProvider: ProviderRecaptcha},
			want: []string{"RECAPTCHA_SECRET_KEY", "RESEND_API_KEY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.MissingSubmissionSecrets())
		})
	}
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("CAPTCHA_PROVIDER", "hcaptcha")
	t.Setenv("HCAPTCHA_SECRET_KEY", "h-secret")
	t.Setenv("CONTACT_REQUIRED_FIELDS", "name,message")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderHCaptcha, cfg.CaptchaProvider)
	assert.Equal(t, "h-secret", cfg.CaptchaSecret())
	assert.Equal(t, []string{"name", "message"}, cfg.RequiredFields)
}
