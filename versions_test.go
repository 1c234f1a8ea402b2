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

package gdax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionConstants(t *testing.T) {
	// Verify version constants are not empty
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, UserAgent, "UserAgent should not be empty")
	assert.NotEmpty(t, LiveBaseURL, "LiveBaseURL should not be empty")
	assert.NotEmpty(t, SandboxBaseURL, "SandboxBaseURL should not be empty")

	// The user agent carries the library version
	assert.Contains(t, UserAgent, Version)

	// Endpoints are https roots without trailing slashes
	for _, baseURL := range []string{LiveBaseURL, SandboxBaseURL} {
		assert.True(t, strings.HasPrefix(baseURL, "https://"))
		assert.False(t, strings.HasSuffix(baseURL, "/"))
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	// Verify all fields are populated
	assert.Equal(t, Version, info.LibraryVersion)
	assert.Equal(t, UserAgent, info.UserAgent)
	assert.Equal(t, LiveBaseURL, info.LiveBaseURL)
	assert.Equal(t, SandboxBaseURL, info.SandboxBaseURL)
}
