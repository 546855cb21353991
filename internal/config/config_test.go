package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 3001, cfg.HTTP.Port)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.False(t, cfg.Postgres.InsecureSkipVerify)
	assert.Len(t, cfg.AllowCORSOrigins, 2)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("CALLLOGS_POSTGRES_DSN", "postgres://env-host/calllogs")
	t.Setenv("CALLLOGS_HTTP_PORT", "9999")
	t.Setenv("CALLLOGS_ENVIRONMENT", "production")
	t.Setenv("CALLLOGS_POSTGRES_INSECURESKIPVERIFY", "true")
	t.Setenv("CALLLOGS_ALLOWCORSORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-host/calllogs", cfg.Postgres.DSN)
	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.Postgres.InsecureSkipVerify)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowCORSOrigins)
}

func TestLoadEnvOverridesDurations(t *testing.T) {
	t.Setenv("CALLLOGS_HTTP_READTIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3s", cfg.HTTP.ReadTimeout.String())
}
