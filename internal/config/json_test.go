package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_FullFile verifies that a complete JSON file is mapped onto
// the structured config.
func TestParseJSON_FullFile(t *testing.T) {
	var fileCfg StructuredJSONConfig
	fileCfg.Transport.BaseURL = "https://json.example.org"
	fileCfg.Transport.RequestTimeout = Duration(10 * time.Second)
	fileCfg.Storage.DB.DSN = "json.db"
	fileCfg.Sync.BatchSize = 2
	fileCfg.Sync.DrainInterval = Duration(time.Minute)
	path := writeTempJSONConfig(t, fileCfg)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.org", cfg.Transport.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2, cfg.Sync.BatchSize)
	assert.Equal(t, time.Minute, cfg.Sync.DrainInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

// TestParseJSON_MissingFile verifies the error path for a dangling path.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	require.Error(t, err)
}

// TestDuration_UnmarshalString verifies "30s"-style duration strings.
func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"30s"`), &d))
	assert.Equal(t, Duration(30*time.Second), d)
}

// TestDuration_UnmarshalNumber verifies raw nanosecond numbers.
func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, Duration(time.Second), d)
}

// TestDuration_UnmarshalInvalid verifies that malformed strings error out.
func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
