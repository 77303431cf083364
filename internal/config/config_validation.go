// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DevFriend Authors

package config

import (
	"encoding/base64"
	"os"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and applies the
// defaults that merging cannot express.
//
// The master encryption key is the one hard requirement: without it stored
// secrets can be neither written nor read, so startup is refused.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.EncryptionKey == "" {
		// legacy deployments export the key under the product name
		cfg.App.EncryptionKey = os.Getenv("DEVFRIEND_ENCRYPTION_KEY")
	}
	if cfg.App.EncryptionKey == "" {
		return ErrMissingEncryptionKey
	}
	if key, err := base64.StdEncoding.DecodeString(cfg.App.EncryptionKey); err != nil || len(key) != 32 {
		return ErrInvalidEncryptionKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	cfg.applyDefaults()

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "devfriend"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "0.0.0.0:8000"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.OAuth.FrontendURL == "" {
		cfg.OAuth.FrontendURL = "http://localhost:88"
	}
	if cfg.OAuth.BackendURL == "" {
		cfg.OAuth.BackendURL = "http://localhost:8000"
	}
}
