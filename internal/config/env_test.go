package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_FullConfig verifies that every section is populated from the
// corresponding environment variables.
func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "mindpad")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("AI_GATEWAY_URL", "https://gw.example.com")
	t.Setenv("AI_API_KEY", "secret")
	t.Setenv("AI_MODEL", "google/gemini-2.5-flash")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/mindpad")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "mindpad", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "https://gw.example.com", cfg.AI.GatewayURL)
	assert.Equal(t, "secret", cfg.AI.APIKey)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, "postgres://u:p@localhost/mindpad", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// TestParseEnv_EmptyEnvironment verifies that an empty environment produces
// a zero-valued config without error.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// TestParseEnv_InvalidDuration verifies that a malformed duration value is
// reported as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}
