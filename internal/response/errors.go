// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import "errors"

var (
	// ErrMarshalBody is returned when a body value cannot be serialized to JSON.
	ErrMarshalBody = errors.New("error serializing response body")

	// ErrInvalidRedirectStatus is returned by [Response.Redirect] for status
	// codes outside the 3xx range.
	ErrInvalidRedirectStatus = errors.New("redirect status must be 3xx")
)
