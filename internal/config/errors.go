package config

import (
	"errors"
	"time"
)

const (
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingEncryptionKey indicates that no master encryption key was
	// provided. The server cannot operate on stored secrets without it.
	ErrMissingEncryptionKey = errors.New("master encryption key is not configured")
	// ErrInvalidEncryptionKey indicates that the master encryption key is
	// not a base64-encoded 32-byte value.
	ErrInvalidEncryptionKey = errors.New("master encryption key must be 32 bytes, base64-encoded")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
