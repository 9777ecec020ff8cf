// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while turning an HTTP request into an event.
var (
	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("error reading request body")

	// ErrBodyTooLarge is returned when the body exceeds the handler's limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
