package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIREBASE_ADMIN_JSON", `{"project_id":"test-project"}`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, DefaultDatabaseURL, cfg.Firebase.DatabaseURL)
	assert.JSONEq(t, `{"project_id":"test-project"}`, string(cfg.Firebase.AdminJSON))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FIREBASE_ADMIN_JSON", `{"project_id":"test-project"}`)
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("FIREBASE_DATABASE_URL", "https://staging-rtdb.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://staging-rtdb.example.com/", cfg.Firebase.DatabaseURL)
}

func TestLoadRequiresCredential(t *testing.T) {
	t.Setenv("FIREBASE_ADMIN_JSON", "")

	_, err := Load()
	assert.Error(t, err)
}
