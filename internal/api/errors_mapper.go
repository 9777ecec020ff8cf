// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"errors"
	"net/http"

	"github.com/ToddHoff/lambda-api/internal/app"
	"github.com/ToddHoff/lambda-api/internal/response"
)

var errorStatusMap = map[error]int{
	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrBadRequest:       http.StatusBadRequest,
	ErrUnauthorized:     http.StatusUnauthorized,
	ErrForbidden:        http.StatusForbidden,
	ErrHandlerPanic:     http.StatusInternalServerError,

	response.ErrMarshalBody:           http.StatusInternalServerError,
	response.ErrInvalidRedirectStatus: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessageMap holds the client-facing text of the errors raised by the
// dispatcher itself.
var errorMessageMap = map[error]string{
	ErrNotFound:         app.MsgRouteNotFound,
	ErrMethodNotAllowed: app.MsgMethodNotAllowed,
}

func messageFromError(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrHandlerPanic) {
		return app.MsgInternalServerError
	}
	for target, msg := range errorMessageMap {
		if err == target {
			return msg
		}
	}
	return err.Error()
}
