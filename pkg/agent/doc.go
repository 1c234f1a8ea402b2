// Package agent provides the request primitives for the exchange's REST API.
//
// An Agent holds an optional credential set and exposes four primitives that
// the endpoint facade composes:
//
//   - GetPublic - unauthenticated GET (market data)
//   - GetPrivate - signed GET (account and trading data)
//   - PostPrivate - signed POST with a JSON body
//   - DeletePrivate - signed DELETE
//
// # Public-Only and Upgraded Modes
//
// A fresh Agent is public-only. Attaching credentials upgrades it:
//
//	a := agent.New("", nil)
//	a.Upgrade(auth.Credentials{Key: key, Secret: secret, Passphrase: passphrase})
//
// Private primitives on a public-only agent fail with ErrUnauthenticated
// before any network call is made. Upgrade always replaces the whole
// credential set; there is no way to clear credentials, only to replace them.
//
// # Per-Verb Signing Asymmetry
//
// The exchange signs exactly what travels in the request payload channel.
// GET and DELETE carry no body, so the signed message covers only the
// timestamp, method and request path. POST folds the JSON payload bytes into
// the signed message, and the payload dispatched is byte-for-byte the payload
// signed. Params preserves insertion order for this reason.
//
// # Error Normalization
//
// Failures surface as, in order of specificity: the server's structured
// message field, the raw response body, the HTTP status (all three carried by
// APIError), or a TransportError when no response was received at all.
// Nothing is retried and nothing is logged.
//
// # Concurrency
//
// Concurrent requests on one Agent are independent. Upgrade is a plain
// assignment without locking; an in-flight request keeps the credential
// snapshot and signature it already captured. Callers that interleave
// Upgrade with requests and need strict ordering must serialize externally.
//
// # Pagination
//
// Cursor parameters (before, after, limit) pass through verbatim as query
// params. The library never follows cursors; the next page is the caller's
// to request.
package agent
