package auth

import "errors"

// ErrInvalidCredentialFormat indicates that the secret key could not be
// decoded for signing.
var ErrInvalidCredentialFormat = errors.New("invalid credential format")

// Credentials is the immutable credential set issued by the exchange for one
// API key. Absence of credentials is modeled as a nil *Credentials, never as a
// partially populated value.
type Credentials struct {
	// Key is the public API key
	Key string

	// Secret is the base64-encoded HMAC signing key
	Secret string

	// Passphrase is the API key passphrase chosen at key creation
	Passphrase string
}
