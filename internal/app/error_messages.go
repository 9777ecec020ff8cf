// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// dispatcher and the local emulator.
//
// All Msg* constants are client-facing strings written into response bodies.
// Keeping them in one place keeps the wording consistent across transports.
package app

const (
	// MsgRouteNotFound is returned when no route matches the event path.
	MsgRouteNotFound = "Route not found"

	// MsgMethodNotAllowed is returned when the path is known but has no
	// handler for the event method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError replaces the text of recovered handler panics.
	MsgInternalServerError = "Internal server error"

	// MsgInvocationTimeout is returned by the emulator when the dispatcher
	// does not finish before the request timeout.
	MsgInvocationTimeout = "Invocation timed out"

	// MsgInvocationCanceled is returned by the emulator when the client went
	// away before the event was dispatched.
	MsgInvocationCanceled = "Invocation canceled"
)
