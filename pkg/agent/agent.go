// Copyright (C) 2026 haleyga
//
// This file is part of gdax-cryptoexchange-api.
//
// gdax-cryptoexchange-api is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gdax-cryptoexchange-api is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with gdax-cryptoexchange-api.  If not, see <https://www.gnu.org/licenses/>.

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gdax "github.com/haleyga/gdax-cryptoexchange-api"
	"github.com/haleyga/gdax-cryptoexchange-api/pkg/auth"
)

// Authentication headers attached to every private request
const (
	HeaderAccessKey        = "CB-ACCESS-KEY"
	HeaderAccessSign       = "CB-ACCESS-SIGN"
	HeaderAccessTimestamp  = "CB-ACCESS-TIMESTAMP"
	HeaderAccessPassphrase = "CB-ACCESS-PASSPHRASE"
)

// DefaultTimeout is the fixed transport timeout applied when no HTTP client
// is injected.
const DefaultTimeout = 10 * time.Second

// Agent dispatches requests against the exchange's REST API. It starts in
// public-only mode; Upgrade attaches credentials and enables the private
// primitives. There is no reverse transition.
//
// An Agent is safe for concurrent requests. Upgrade is a plain assignment
// with no cross-request locking: a request already in flight keeps the
// signature it captured, but callers that need strict ordering between
// Upgrade and subsequent requests must serialize those calls themselves.
type Agent struct {
	baseURL    string
	httpClient *http.Client
	signer     auth.RequestSigner
	creds      *auth.Credentials
}

// New creates a public-only Agent.
//
// Parameters:
//   - baseURL: REST endpoint root ("" to use the live exchange endpoint)
//   - httpClient: optional HTTP client (nil to use a client with the fixed
//     default timeout)
func New(baseURL string, httpClient *http.Client) *Agent {
	if baseURL == "" {
		baseURL = gdax.LiveBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Agent{
		baseURL:    baseURL,
		httpClient: httpClient,
		signer:     auth.NewDefaultRequestSigner(),
	}
}

// IsUpgraded reports whether credentials are present
func (a *Agent) IsUpgraded() bool {
	return a.creds != nil
}

// Upgrade attaches credentials, replacing any previous set wholesale. Fields
// are never merged; a partially populated credential state cannot occur.
func (a *Agent) Upgrade(creds auth.Credentials) {
	a.creds = &creds
}

// GetPublic issues an unauthenticated GET against /endpoint with the given
// query params.
func (a *Agent) GetPublic(ctx context.Context, endpoint string, params *Params) (*Response, error) {
	return a.dispatch(ctx, http.MethodGet, requestPath(endpoint, params), nil, nil)
}

// GetPrivate issues a signed GET against /endpoint. Only the method and the
// request path (including any query string) enter the signed message; GET
// carries no body, so none is signed.
func (a *Agent) GetPrivate(ctx context.Context, endpoint string, params *Params) (*Response, error) {
	creds := a.creds
	if creds == nil {
		return nil, ErrUnauthenticated
	}

	path := requestPath(endpoint, params)

	sig, err := a.signer.Sign(creds.Secret, path, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	return a.dispatch(ctx, http.MethodGet, path, nil, authHeaders(creds, sig))
}

// PostPrivate issues a signed POST against /endpoint with body as the JSON
// payload. The exact payload bytes are folded into the signed message; a nil
// body contributes no body segment at all.
func (a *Agent) PostPrivate(ctx context.Context, endpoint string, body *Params) (*Response, error) {
	creds := a.creds
	if creds == nil {
		return nil, ErrUnauthenticated
	}

	path := "/" + endpoint

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	sig, err := a.signer.Sign(creds.Secret, path, http.MethodPost, payload)
	if err != nil {
		return nil, err
	}

	return a.dispatch(ctx, http.MethodPost, path, payload, authHeaders(creds, sig))
}

// DeletePrivate issues a signed DELETE against /endpoint with the given query
// params. Like GET, DELETE carries no body and none is signed.
func (a *Agent) DeletePrivate(ctx context.Context, endpoint string, params *Params) (*Response, error) {
	creds := a.creds
	if creds == nil {
		return nil, ErrUnauthenticated
	}

	path := requestPath(endpoint, params)

	sig, err := a.signer.Sign(creds.Secret, path, http.MethodDelete, nil)
	if err != nil {
		return nil, err
	}

	return a.dispatch(ctx, http.MethodDelete, path, nil, authHeaders(creds, sig))
}

// requestPath builds the request path: /endpoint plus query string when
// params are present.
func requestPath(endpoint string, params *Params) string {
	path := "/" + endpoint
	if params.Len() > 0 {
		path += "?" + params.Encode()
	}
	return path
}

// authHeaders builds the four authentication headers from one credential
// snapshot and one signature. The timestamp header must carry the exact value
// that entered the prehash; the server recomputes the digest from it.
func authHeaders(creds *auth.Credentials, sig *auth.Signature) map[string]string {
	return map[string]string{
		HeaderAccessKey:        creds.Key,
		HeaderAccessSign:       sig.Digest,
		HeaderAccessTimestamp:  sig.TimestampString(),
		HeaderAccessPassphrase: creds.Passphrase,
	}
}

// dispatch executes one HTTP request and normalizes the outcome
func (a *Agent) dispatch(ctx context.Context, method string, path string, payload []byte, headers map[string]string) (*Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", gdax.UserAgent)

	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
