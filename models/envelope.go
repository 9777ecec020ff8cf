// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the outbound proxy-integration response returned to the
// serverless runtime.
//
// Body is always a string; binary payloads are base64 text with
// IsBase64Encoded set to true.
type Envelope struct {
	Headers         map[string]string `json:"headers"`
	StatusCode      int               `json:"statusCode"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}
