// Package auth provides request signing for the exchange's authenticated
// REST endpoints.
//
// Every private request carries an HMAC-SHA256 digest computed over a
// prehash string of the form:
//
//	timestamp + METHOD + requestPath + body
//
// where timestamp is the Unix time in seconds (fractional seconds allowed),
// METHOD is the upper-cased HTTP method, requestPath is the path including
// any query string, and body is the exact JSON payload for requests that
// carry one. Requests without a body contribute no body segment.
//
// # Signing a Request
//
//	signer := auth.NewDefaultRequestSigner()
//	sig, err := signer.Sign(creds.Secret, "/orders", "POST", body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned Signature carries both the base64 digest and the timestamp it
// was computed with. Both must be forwarded to the server: the server
// recomputes the digest from the timestamp header, so echoing a different
// timestamp than the one signed makes verification fail.
//
// # Deterministic Signing
//
// For tests, inject the timestamp through SigningOptions:
//
//	opts := &auth.SigningOptions{Timestamp: 1446837062.914}
//	sig, err := signer.SignWithOptions(creds.Secret, "/orders", "POST", body, opts)
//
// Given identical inputs and an identical timestamp, signing is
// deterministic and performs no I/O.
//
// # Credential Format
//
// The Secret field of Credentials is the base64-encoded raw key as issued by
// the exchange. Signing fails with ErrInvalidCredentialFormat when the
// secret does not decode.
package auth
