// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ToddHoff/lambda-api/internal/utils"
	"github.com/ToddHoff/lambda-api/models"
)

// eventFromRequest builds the proxy event for r.
//
// Repeated headers are joined with ", " and repeated query parameters keep
// their last value. Bodies that are not valid UTF-8 are base64-encoded and
// flagged with isBase64Encoded.
func (h *Handler) eventFromRequest(r *http.Request) (models.Event, error) {
	event := models.Event{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		RequestContext: models.RequestContext{
			Stage: h.stage,
		},
	}
	if id, ok := utils.GetRequestIDFromContext(r.Context()); ok {
		event.RequestContext.RequestID = id
	}

	if len(r.Header) > 0 || r.Host != "" {
		event.Headers = make(map[string]string, len(r.Header)+1)
		for name, values := range r.Header {
			event.Headers[name] = strings.Join(values, ", ")
		}
		if r.Host != "" {
			event.Headers["Host"] = r.Host
		}
	}

	if query := r.URL.Query(); len(query) > 0 {
		event.QueryStringParameters = make(map[string]string, len(query))
		for name, values := range query {
			event.QueryStringParameters[name] = values[len(values)-1]
		}
	}

	body, err := h.readBody(r)
	if err != nil {
		return models.Event{}, err
	}
	if len(body) > 0 {
		if utf8.Valid(body) {
			event.Body = string(body)
		} else {
			event.Body = base64.StdEncoding.EncodeToString(body)
			event.IsBase64Encoded = true
		}
	}

	return event, nil
}

func (h *Handler) readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodyBytes+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingBody, err)
	}
	if int64(len(body)) > h.maxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	return body, nil
}
