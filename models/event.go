// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Event is the inbound proxy-integration request envelope handed to the
// API by the serverless runtime (or by the local emulator).
//
// Header names arrive in whatever casing the edge proxy used; lookups on
// the derived request are case-insensitive.
type Event struct {
	// HTTPMethod is the request method in any casing (e.g. "get", "POST").
	HTTPMethod string `json:"httpMethod"`

	// Path is the raw request path, including any configured base prefix.
	Path string `json:"path"`

	// Headers maps raw request header names to their single value.
	Headers map[string]string `json:"headers,omitempty"`

	// QueryStringParameters maps query parameter names to their last value.
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`

	// Body is the raw request body. It is base64 text when IsBase64Encoded
	// is set.
	Body string `json:"body,omitempty"`

	// IsBase64Encoded reports whether Body carries base64-encoded bytes.
	IsBase64Encoded bool `json:"isBase64Encoded,omitempty"`

	// RequestContext carries runtime metadata about the invocation.
	RequestContext RequestContext `json:"requestContext,omitempty"`
}

// RequestContext is the subset of the proxy request context used by the API.
type RequestContext struct {
	// RequestID is the runtime-assigned invocation identifier. When empty,
	// the API generates one.
	RequestID string `json:"requestId,omitempty"`

	// Stage is the deployment stage name, passed through untouched.
	Stage string `json:"stage,omitempty"`
}
