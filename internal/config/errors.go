// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid emulator settings
	// (for example, a malformed address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level or a base path without a leading slash).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates a custom auth scheme that is not a
	// valid HTTP token.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidCORSConfigs indicates a CORS policy that cannot be served
	// (for example, a negative max age).
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
)
