// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// roster-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Transport holds network address and timeout settings for the outbound
	// message endpoint.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds tunables of the sync coordinator and its background
	// workers.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Transport holds settings for the outbound delivery endpoint.
type Transport struct {
	// BaseURL is the base URL of the message delivery endpoint
	// (e.g. "https://push.example.org").
	// Env: TRANSPORT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// delivery request (e.g. "15s", "1m").
	// Env: TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite database that backs
// the fingerprint slots and the durable job queue.
type DB struct {
	// DSN is the SQLite database path (e.g. "roster-sync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds tunables of the sync coordinator.
type Sync struct {
	// BatchSize is the maximum number of entities carried by a single
	// outbound sync message. Defaults to 3.
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// DrainInterval defines how often the job-queue worker attempts to
	// deliver pending durable jobs. Defaults to 30s.
	// Env: SYNC_DRAIN_INTERVAL
	DrainInterval time.Duration `env:"DRAIN_INTERVAL"`
}

// Default values applied by GetConfig when a field is left unset by every
// configuration source.
const (
	DefaultBatchSize      = 3
	DefaultDrainInterval  = 30 * time.Second
	DefaultRequestTimeout = 15 * time.Second
)

// GetConfig loads, merges, and validates the client configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
