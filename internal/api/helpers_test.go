// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/models"
)

// lowercaseConfig reproduces the wire format of the original framework,
// which serializes lower-cased header names.
func lowercaseConfig() config.StructuredConfig {
	return config.StructuredConfig{App: config.App{Version: "v1.0", LowercaseHeaders: true}}
}

func configWithBase(base string) config.StructuredConfig {
	return config.StructuredConfig{App: config.App{Version: "v1.0", Base: base}}
}

func newTestAPI(t *testing.T, cfg config.StructuredConfig, opts ...Option) *API {
	t.Helper()
	a, err := New(cfg, logger.Nop(), opts...)
	require.NoError(t, err)
	return a
}

func getEvent(path string, headers map[string]string) models.Event {
	if headers == nil {
		headers = map[string]string{"Content-Type": "application/json"}
	}
	return models.Event{
		HTTPMethod: "get",
		Path:       path,
		Headers:    headers,
	}
}

func run(t *testing.T, a *API, event models.Event) models.Envelope {
	t.Helper()
	env, err := a.Run(context.Background(), event)
	require.NoError(t, err)
	return env
}
