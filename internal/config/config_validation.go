// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the client relies on at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Transport.BaseURL == "" || cfg.Transport.RequestTimeout <= 0 {
		return ErrInvalidTransportConfigs
	}

	if cfg.Sync.BatchSize <= 0 || cfg.Sync.DrainInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
