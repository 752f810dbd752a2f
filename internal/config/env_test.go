package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesNestedFields verifies that env variables with the
// documented prefixes land in the right nested struct fields.
func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("TRANSPORT_BASE_URL", "https://env.example.org")
	t.Setenv("TRANSPORT_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("SYNC_BATCH_SIZE", "4")
	t.Setenv("SYNC_DRAIN_INTERVAL", "45s")
	t.Setenv("CONFIG", "/tmp/env-config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://env.example.org", cfg.Transport.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Sync.BatchSize)
	assert.Equal(t, 45*time.Second, cfg.Sync.DrainInterval)
	assert.Equal(t, "/tmp/env-config.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidValue verifies that an unconvertible env value is
// reported as a wrapped error.
func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("SYNC_BATCH_SIZE", "not-a-number")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}

// TestParseEnv_EmptyEnvironment verifies that parsing with no relevant env
// variables leaves the config at its zero value.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}
