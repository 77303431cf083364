package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

import "github.com/devfriend/devfriend/models"

// Vault encrypts and decrypts secret bundles with the server-wide master
// key. It knows nothing about users, storage, or the network; persistence
// and ownership checks live in the service layer.
type Vault interface {
	// EncryptBundle serializes the bundle to JSON and encrypts it with the
	// master key. Returns a base64-encoded blob (nonce || ciphertext) safe
	// to store in the database. Encryption is non-deterministic: two calls
	// with the same bundle produce different blobs.
	EncryptBundle(bundle models.SecretBundle) (string, error)

	// DecryptBundle decodes and decrypts a blob produced by EncryptBundle.
	// Returns an error wrapping [ErrDecryptionFailed] for any malformed or
	// tampered input; it never panics on garbage.
	DecryptBundle(encryptedB64 string) (models.SecretBundle, error)
}
