package auth

import "strconv"

// RequestSigner computes the authentication digest for a private API request.
type RequestSigner interface {
	// Sign computes the digest for the given secret, request path and HTTP
	// method, stamped with the current time. The body is the exact JSON
	// payload that will be dispatched, or nil when the request carries none.
	Sign(secret string, path string, method string, body []byte) (*Signature, error)

	// SignWithOptions computes the digest with custom options
	SignWithOptions(secret string, path string, method string, body []byte, opts *SigningOptions) (*Signature, error)
}

// SigningOptions contains options for computing a request signature
type SigningOptions struct {
	// Timestamp is the Unix time in seconds used to build the signed message.
	// Fractional seconds are allowed and preserved. If 0, current time is used
	Timestamp float64
}

// Signature is the result of signing one request. It is ephemeral: the server
// rejects reused timestamps, so a fresh Signature must be computed per request.
type Signature struct {
	// Digest is the base64-encoded HMAC-SHA256 of the prehash string
	Digest string

	// Timestamp is the exact Unix time in seconds folded into the prehash.
	// It must be echoed back to the server unmodified, which recomputes the
	// digest from this value during verification.
	Timestamp float64
}

// TimestampString renders the timestamp exactly as it appears in the signed
// message, suitable for the timestamp request header.
func (s *Signature) TimestampString() string {
	return strconv.FormatFloat(s.Timestamp, 'f', -1, 64)
}
