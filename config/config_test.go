package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tropicacao/leads-api/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "fr", cfg.Server.DefaultLocale)
	assert.Equal(t, "https://tropicacao.com", cfg.Server.BaseURL)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)

	assert.Equal(t, 5, cfg.RateLimit.SubmitMax)
	assert.Equal(t, time.Minute, cfg.RateLimit.SubmitWindow)
	assert.Equal(t, 30, cfg.RateLimit.EventsMax)

	assert.InDelta(t, 0.3, cfg.ReCAPTCHA.RejectBelow, 0.001)
	assert.InDelta(t, 0.5, cfg.ReCAPTCHA.SuspectBelow, 0.001)

	assert.Equal(t, "leads@tropicacao.com", cfg.Email.FromAddress)
	assert.Equal(t, "sales@tropicacao.com", cfg.Email.NotifyTo)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SUBMIT_RATE_LIMIT_MAX", "10")
	t.Setenv("DEFAULT_LOCALE", "en")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10, cfg.RateLimit.SubmitMax)
	assert.Equal(t, "en", cfg.Server.DefaultLocale)
}

func TestLoad_RejectsUnsupportedLocale(t *testing.T) {
	t.Setenv("DEFAULT_LOCALE", "de")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_LOCALE")
}

func TestValidate_EmailAddressesRequiredWithAPIKey(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.Email.APIKey = "re_test_key"
	cfg.Email.NotifyTo = ""

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_NOTIFY_TO")
}

func TestLoad_ThresholdBounds(t *testing.T) {
	t.Setenv("RECAPTCHA_REJECT_BELOW", "1.5")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECAPTCHA_REJECT_BELOW")
}

func TestLoad_SuspectBelowMustCoverRejectBelow(t *testing.T) {
	t.Setenv("RECAPTCHA_REJECT_BELOW", "0.6")
	t.Setenv("RECAPTCHA_SUSPECT_BELOW", "0.4")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECAPTCHA_SUSPECT_BELOW")
}
