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

// Package gdax provides version information for gdax-cryptoexchange-api.
package gdax

const (
	// Version is the current version of gdax-cryptoexchange-api
	Version = "1.0.0"

	// UserAgent identifies this library on every request it dispatches
	UserAgent = "gdax-cryptoexchange-api/" + Version

	// LiveBaseURL is the production REST endpoint of the exchange
	LiveBaseURL = "https://api.gdax.com"

	// SandboxBaseURL is the public sandbox REST endpoint. Sandbox credentials
	// are issued separately from live credentials.
	SandboxBaseURL = "https://api-public.sandbox.gdax.com"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion string
	UserAgent      string
	LiveBaseURL    string
	SandboxBaseURL string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion: Version,
		UserAgent:      UserAgent,
		LiveBaseURL:    LiveBaseURL,
		SandboxBaseURL: SandboxBaseURL,
	}
}
