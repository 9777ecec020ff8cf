// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses by the dispatcher. Handlers may
// return them directly or wrap them with fmt.Errorf("%w: ...").
var (
	// ErrNotFound is reported when no route matches the event path.
	ErrNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported when the path matches a route that
	// has no handler for the event method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrBadRequest marks input the handler cannot process.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized marks missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks valid credentials without access.
	ErrForbidden = errors.New("forbidden")

	// ErrHandlerPanic is reported when a handler panics.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrInvocationCanceled is returned by Run when its context is already
	// done.
	ErrInvocationCanceled = errors.New("invocation canceled")
)

// Error carries an explicit status code and client-facing message.
type Error struct {
	Status  int
	Message string
}

// NewError returns an *Error with the given status and message.
func NewError(status int, message string) error {
	return &Error{Status: status, Message: message}
}

// Errorf is NewError with a formatted message.
func Errorf(status int, format string, args ...any) error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}
