package crypto

import "errors"

// ErrDecryptionFailed indicates that a stored blob could not be decrypted:
// the payload is malformed, was tampered with, or was written under a
// different master key. Secrets that fail this way are unusable but must
// not crash the caller.
var ErrDecryptionFailed = errors.New("decryption failed")
