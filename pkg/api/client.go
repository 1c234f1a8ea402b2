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

package api

import (
	"net/http"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
	"github.com/haleyga/gdax-cryptoexchange-api/pkg/auth"
)

// Client is the endpoint facade over the request agent: one method per
// documented REST resource, each translating to exactly one agent primitive.
type Client struct {
	agent *agent.Agent
}

// New creates a public-only client.
//
// Parameters:
//   - baseURL: REST endpoint root ("" to use the live exchange endpoint)
//   - httpClient: optional HTTP client (nil to use the default with the fixed
//     transport timeout)
func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{agent: agent.New(baseURL, httpClient)}
}

// NewWithCredentials creates a client already upgraded with credentials
func NewWithCredentials(creds auth.Credentials, baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL, httpClient)
	c.Upgrade(creds)
	return c
}

// Upgrade attaches credentials to the underlying agent, replacing any
// previous set wholesale. See agent.Agent.Upgrade for the concurrency caveat.
func (c *Client) Upgrade(creds auth.Credentials) {
	c.agent.Upgrade(creds)
}

// IsUpgraded reports whether private endpoints are available
func (c *Client) IsUpgraded() bool {
	return c.agent.IsUpgraded()
}
