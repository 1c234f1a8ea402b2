package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// DefaultRequestSigner implements RequestSigner with the exchange's
// HMAC-SHA256 scheme.
type DefaultRequestSigner struct{}

// NewDefaultRequestSigner creates a new DefaultRequestSigner
func NewDefaultRequestSigner() *DefaultRequestSigner {
	return &DefaultRequestSigner{}
}

// Sign computes the digest for the given request using the current time
func (s *DefaultRequestSigner) Sign(secret string, path string, method string, body []byte) (*Signature, error) {
	return s.SignWithOptions(secret, path, method, body, nil)
}

// SignWithOptions computes the digest for the given request with custom options
func (s *DefaultRequestSigner) SignWithOptions(secret string, path string, method string, body []byte, opts *SigningOptions) (*Signature, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentialFormat, err)
	}

	// Use default options if nil
	if opts == nil {
		opts = &SigningOptions{}
	}

	// Set timestamp if not provided. Sub-second precision is part of the
	// signed message; the server accepts it.
	timestamp := opts.Timestamp
	if timestamp == 0 {
		timestamp = float64(time.Now().UnixNano()) / float64(time.Second)
	}

	sig := &Signature{Timestamp: timestamp}

	// Build the prehash string. A request without a body contributes no body
	// segment at all; serializing an empty object here would make the server's
	// recomputed digest mismatch.
	prehash := sig.TimestampString() + strings.ToUpper(method) + path
	if len(body) > 0 {
		prehash += string(body)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(prehash))
	sig.Digest = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return sig, nil
}
