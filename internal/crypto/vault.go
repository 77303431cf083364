// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DevFriend Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/devfriend/devfriend/models"
)

// vault is the private implementation of [Vault].
//
// All stored secret bundles are encrypted with a single server-wide master
// key under AES-256-GCM. A random 12-byte nonce is prepended to the
// ciphertext so that the decryption side can locate it:
// blob = nonce ‖ ciphertext, Base64 (standard encoding).
type vault struct {
	aead cipher.AEAD
}

// NewVault constructs a [Vault] from the base64-encoded 32-byte master key.
// Returns an error if the key cannot be decoded or has the wrong length;
// callers treat that as fatal at startup.
func NewVault(masterKeyB64 string) (Vault, error) {
	key, err := base64.StdEncoding.DecodeString(masterKeyB64)
	if err != nil {
		return nil, fmt.Errorf("decode master key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("master key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &vault{aead: aead}, nil
}

// EncryptBundle implements [Vault]. It marshals the bundle to JSON, then
// encrypts it with the master key using AES-256-GCM. Each call draws a fresh
// random nonce, so encrypting the same bundle twice yields different blobs.
func (v *vault) EncryptBundle(bundle models.SecretBundle) (string, error) {
	plaintext, err := json.Marshal(bundle)
	if err != nil {
		return "", fmt.Errorf("marshal bundle: %w", err)
	}

	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// nonce || ciphertext
	ciphertext := v.aead.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptBundle implements [Vault]. It Base64-decodes the blob, splits out
// the nonce, decrypts with the master key and unmarshals the JSON payload.
//
// Any failure — malformed base64, truncated blob, authentication-tag
// mismatch after tampering or a key rotation — is reported as
// [ErrDecryptionFailed] so callers can branch on it without string matching.
func (v *vault) DecryptBundle(encryptedB64 string) (models.SecretBundle, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	nonceSize := v.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	var bundle models.SecretBundle
	if err := json.Unmarshal(plaintext, &bundle); err != nil {
		return nil, fmt.Errorf("%w: unmarshal bundle: %w", ErrDecryptionFailed, err)
	}

	return bundle, nil
}
