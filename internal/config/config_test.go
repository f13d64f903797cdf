package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hello@formgate.dev", cfg.ContactRecipient)
	assert.Empty(t, cfg.ResendAPIKey)
	assert.Equal(t, 10, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("PORT", "9090")
	t.Setenv("CONTACT_EMAIL", "ops@example.com")
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("ALLOWED_ORIGINS", "https://formgate.dev,https://www.formgate.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "ops@example.com", cfg.ContactRecipient)
	assert.Equal(t, "re_test_key", cfg.ResendAPIKey)
	assert.Equal(t, []string{"https://formgate.dev", "https://www.formgate.dev"}, cfg.AllowedOrigins)
}
