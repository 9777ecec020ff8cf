// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponse_CORS_Defaults(t *testing.T) {
	res := New().CORS()

	assert.Equal(t, map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, PUT, POST, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization, Content-Length, X-Requested-With",
	}, res.Envelope().Headers)
}

func TestResponse_CORS_Custom(t *testing.T) {
	res := New().CORS(
		WithOrigin("example.com"),
		WithMethods("GET, OPTIONS"),
		WithHeaders("Content-Type, Authorization"),
		WithMaxAgeMillis(84000000),
		WithCredentials(true),
		WithExposeHeaders("Content-Type"),
	)

	assert.Equal(t, map[string]string{
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Origin":      "example.com",
		"Access-Control-Allow-Methods":     "GET, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Expose-Headers":    "Content-Type",
		"Access-Control-Max-Age":           "84000",
	}, res.Envelope().Headers)
}

func TestResponse_CORS_OverrideOriginAndCredentials(t *testing.T) {
	res := New().CORS()
	res.CORS(WithOrigin("example.com"), WithCredentials(true))

	assert.Equal(t, map[string]string{
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Origin":      "example.com",
		"Access-Control-Allow-Methods":     "GET, PUT, POST, DELETE, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization, Content-Length, X-Requested-With",
		"Access-Control-Allow-Credentials": "true",
	}, res.Envelope().Headers)
}

func TestResponse_CORS_OverrideMethodsKeepsOrigin(t *testing.T) {
	res := New().CORS()
	res.CORS(WithMethods("GET, PUT, POST"))

	headers := res.Envelope().Headers
	assert.Equal(t, "*", headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET, PUT, POST", headers["Access-Control-Allow-Methods"])
	assert.Equal(t, DefaultCORSHeaders, headers["Access-Control-Allow-Headers"])
}

func TestResponse_CORS_ClearingRemovesStaleHeaders(t *testing.T) {
	res := New().CORS(
		WithCredentials(true),
		WithExposeHeaders("X-Total"),
		WithMaxAge(time.Minute),
	)
	assert.True(t, res.HasHeader(HeaderAllowCredentials))
	assert.True(t, res.HasHeader(HeaderExposeHeaders))
	assert.Equal(t, "60", res.Headers()[HeaderMaxAge])

	res.CORS(WithCredentials(false), WithExposeHeaders(""), WithMaxAge(0))

	assert.False(t, res.HasHeader(HeaderAllowCredentials))
	assert.False(t, res.HasHeader(HeaderExposeHeaders))
	assert.False(t, res.HasHeader(HeaderMaxAge))
	assert.Equal(t, "*", res.Headers()[HeaderAllowOrigin])
}

func TestResponse_CORS_MaxAgeTruncatesToSeconds(t *testing.T) {
	res := New().CORS(WithMaxAgeMillis(1999))

	assert.Equal(t, "1", res.Headers()[HeaderMaxAge])
}

func TestResponse_CORS_NilOptionIgnored(t *testing.T) {
	res := New()

	assert.NotPanics(t, func() { res.CORS(nil, WithOrigin("a.example")) })
	assert.Equal(t, "a.example", res.Headers()[HeaderAllowOrigin])
}

func TestResponse_CORS_ExistingHeaderCasingKept(t *testing.T) {
	res := New().Header("access-control-allow-origin", "old").CORS()

	got := res.Envelope().Headers
	assert.Equal(t, "*", got["access-control-allow-origin"])
	_, dup := got["Access-Control-Allow-Origin"]
	assert.False(t, dup)
}
