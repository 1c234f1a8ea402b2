package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrSignatureMismatch indicates a digest that does not verify against the
// recomputed prehash.
var ErrSignatureMismatch = errors.New("signature mismatch")

// VerifySignature recomputes the digest the way the server does, from the
// timestamp header value and the dispatched request, and compares in
// constant time. Intended for mock exchange servers in tests; the live
// server performs the equivalent check.
func VerifySignature(secret string, path string, method string, body []byte, timestamp string, digest string) error {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCredentialFormat, err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp + strings.ToUpper(method) + path))
	mac.Write(body)

	claimed, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return fmt.Errorf("failed to decode digest: %w", err)
	}

	if !hmac.Equal(mac.Sum(nil), claimed) {
		return ErrSignatureMismatch
	}

	return nil
}
