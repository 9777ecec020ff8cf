// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func expectedFileConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          "v1.0",
			Base:             "/v1",
			LogLevel:         "debug",
			LowercaseHeaders: true,
			TokenSignKey:     "jwt_secret",
			TokenIssuer:      "test_issuer",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		CORS: CORS{
			Enabled:     true,
			Origin:      "example.com",
			MaxAge:      24 * time.Hour,
			Credentials: true,
		},
		Auth: Auth{Schemes: []string{"ApiKey"}},
	}
}

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.json", `{
		"app": {
			"version": "v1.0",
			"base": "/v1",
			"log_level": "debug",
			"lowercase_headers": true,
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"cors": {
			"enabled": true,
			"origin": "example.com",
			"max_age": "24h",
			"credentials": true
		},
		"auth": { "schemes": ["ApiKey"] }
	}`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expectedFileConfig(), cfg)
}

func TestParseFile_YAML(t *testing.T) {
	// Arrange
	body := `
app:
  version: v1.0
  base: /v1
  log_level: debug
  lowercase_headers: true
  token_sign_key: jwt_secret
  token_issuer: test_issuer
server:
  http_address: localhost:8080
  request_timeout: 30s
cors:
  enabled: true
  origin: example.com
  max_age: 24h
  credentials: true
auth:
  schemes:
    - ApiKey
`
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			p := writeConfigFile(t, name, body)

			// Act
			cfg, err := parseFile(p)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, expectedFileConfig(), cfg)
		})
	}
}

func TestParseFile_NumericDurations(t *testing.T) {
	jsonPath := writeConfigFile(t, "c.json", `{"server":{"request_timeout":1000000000}}`)
	yamlPath := writeConfigFile(t, "c.yaml", "server:\n  request_timeout: 1000000000\n")

	for _, p := range []string{jsonPath, yamlPath} {
		cfg, err := parseFile(p)

		require.NoError(t, err)
		assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantMsg: "error reading a config file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeConfigFile(t, "bad.json", `{"app":`) },
			wantMsg: "error decoding json configs",
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeConfigFile(t, "bad.yaml", "app: [unclosed") },
			wantMsg: "error decoding yaml configs",
		},
		{
			name:    "invalid json duration",
			path:    func(t *testing.T) string { return writeConfigFile(t, "d.json", `{"server":{"request_timeout":"soon"}}`) },
			wantMsg: "error decoding json configs",
		},
		{
			name:    "invalid yaml duration",
			path:    func(t *testing.T) string { return writeConfigFile(t, "d.yaml", "server:\n  request_timeout: soon\n") },
			wantMsg: "error decoding yaml configs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(tt.path(t))

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
