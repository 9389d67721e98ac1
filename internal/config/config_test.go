package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONTACT_RESEND_API_KEY", "re_test_key")
	t.Setenv("CONTACT_NOTIFICATION_EMAIL", "ops@example.com")
	t.Setenv("CONTACT_LINE_CHANNEL_ACCESS_TOKEN", "line-token")
	t.Setenv("CONTACT_LINE_GROUP_ID", "C1234567890")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
	require.Equal(t, 10*time.Second, cfg.OutboundTimeout)
	require.False(t, cfg.BotCheckEnabled())
}

func TestLoadBotCheckSwitch(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONTACT_TURNSTILE_SECRET_KEY", "0x_secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.BotCheckEnabled())
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("CONTACT_RESEND_API_KEY", "")
	t.Setenv("CONTACT_NOTIFICATION_EMAIL", "")
	t.Setenv("CONTACT_LINE_CHANNEL_ACCESS_TOKEN", "")
	t.Setenv("CONTACT_LINE_GROUP_ID", "")

	_, err := Load()
	require.Error(t, err)
}

func TestHTTPAddressKeepsLeadingColon(t *testing.T) {
	cfg := Config{AppPort: ":9000"}
	require.Equal(t, ":9000", cfg.HTTPAddress())
}
