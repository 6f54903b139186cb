// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if !strings.HasPrefix(cfg.Storage.DB.DSN, "postgres://") &&
		!strings.HasPrefix(cfg.Storage.DB.DSN, "postgresql://") &&
		!strings.HasPrefix(cfg.Storage.DB.DSN, "sqlite://") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	if cfg.RetryCount < 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
