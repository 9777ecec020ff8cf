package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ToddHoff/lambda-api/internal/api"
	"github.com/ToddHoff/lambda-api/internal/app"
)

var errorStatusMap = map[error]int{
	ErrReadingBody:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	context.DeadlineExceeded:  http.StatusGatewayTimeout,
	api.ErrInvocationCanceled: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	// A deadline also satisfies ErrInvocationCanceled, so it is checked first.
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the plain-text body for a failed invocation.
func messageFromError(err error) string {
	switch status := statusFromError(err); status {
	case http.StatusGatewayTimeout:
		return app.MsgInvocationTimeout
	case http.StatusServiceUnavailable:
		return app.MsgInvocationCanceled
	default:
		return http.StatusText(status)
	}
}
