// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response implements the handler-facing response builder: a
// chainable wrapper around a [headers.Store] plus body, status and the CORS
// and Last-Modified resolvers. [Response.Envelope] serializes the final state
// into a proxy-integration envelope.
package response

import (
	"iter"
	"net/http"
	"strings"

	"github.com/ToddHoff/lambda-api/internal/headers"
	"github.com/ToddHoff/lambda-api/models"
)

// Common response header names.
const (
	HeaderContentType  = "Content-Type"
	HeaderLastModified = "Last-Modified"
	HeaderCacheControl = "Cache-Control"
	HeaderExpires      = "Expires"
	HeaderETag         = "ETag"
	HeaderLocation     = "Location"
	HeaderIfNoneMatch  = "If-None-Match"
)

// MIME types set by the content helpers.
const (
	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
)

// Response accumulates the outbound state of one invocation.
//
// A Response is owned by a single invocation and is not safe for concurrent
// use. Mutators return the receiver so calls can be chained.
type Response struct {
	status  int
	headers *headers.Store
	body    string
	base64  bool

	// contentTypeSet records an explicit Content-Type from handler code,
	// which JSON must not override.
	contentTypeSet bool

	cors *corsPolicy
	etag bool

	clock      Clock
	reqHeaders *headers.Store
	lowercase  bool
}

// Option configures a Response at construction.
type Option func(*Response)

// WithClock replaces the wall clock used by Modified and Cache.
func WithClock(c Clock) Option {
	return func(r *Response) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithRequestHeaders gives the response access to the request headers for
// conditional handling (If-None-Match).
func WithRequestHeaders(h *headers.Store) Option {
	return func(r *Response) {
		r.reqHeaders = h
	}
}

// WithLowercaseHeaders makes Envelope emit lower-cased header names instead of
// their first-seen casing.
func WithLowercaseHeaders(lower bool) Option {
	return func(r *Response) {
		r.lowercase = lower
	}
}

// New returns a Response with status 200 and Content-Type application/json.
func New(opts ...Option) *Response {
	r := &Response{
		status:  http.StatusOK,
		headers: headers.New(),
		clock:   systemClock{},
	}
	r.headers.Set(HeaderContentType, MIMEApplicationJSON)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Status sets the outbound status code.
func (r *Response) Status(code int) *Response {
	r.status = code
	return r
}

// StatusCode returns the current status code.
func (r *Response) StatusCode() int {
	return r.status
}

// Header sets name to value. Without a value the header is stored with an
// empty string; several values are joined as a comma-separated list.
func (r *Response) Header(name string, value ...string) *Response {
	var v string
	switch len(value) {
	case 0:
	case 1:
		v = value[0]
	default:
		v = strings.Join(value, ", ")
	}

	if isContentType(name) {
		r.contentTypeSet = true
	}
	r.headers.Set(name, v)
	return r
}

// GetHeader returns the value of name. The boolean is false when the header
// is absent, as opposed to present with an empty value.
func (r *Response) GetHeader(name string) (string, bool) {
	return r.headers.Get(name)
}

// Headers returns every header keyed by the name it will be serialized
// with: its display name, or the lower-cased name under
// [WithLowercaseHeaders].
func (r *Response) Headers() map[string]string {
	if r.lowercase {
		return r.headers.LowerMap()
	}
	return r.headers.Map()
}

// HeaderNames returns the serialized header names in the order they were
// first set.
func (r *Response) HeaderNames() []string {
	names := r.headers.Keys()
	if r.lowercase {
		for i, name := range names {
			names[i] = strings.ToLower(name)
		}
	}
	return names
}

// HeaderFields iterates over the headers in the order they were first set,
// keyed like [Response.Headers].
func (r *Response) HeaderFields() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, value := range r.headers.All() {
			if r.lowercase {
				name = strings.ToLower(name)
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

// HasHeader reports whether name is set, whatever its value.
func (r *Response) HasHeader(name string) bool {
	return r.headers.Has(name)
}

// HasHeaders reports whether any header is set.
func (r *Response) HasHeaders() bool {
	return !r.headers.Empty()
}

// RemoveHeader deletes name if present.
func (r *Response) RemoveHeader(name string) *Response {
	r.headers.Remove(name)
	if isContentType(name) {
		r.contentTypeSet = false
	}
	return r
}

// Body returns the serialized body.
func (r *Response) Body() string {
	return r.body
}

// IsBase64Encoded reports whether Body is base64 text.
func (r *Response) IsBase64Encoded() bool {
	return r.base64
}

// Envelope finalizes the response into the outbound proxy envelope.
func (r *Response) Envelope() models.Envelope {
	r.applyETag()

	return models.Envelope{
		Headers:         r.Headers(),
		StatusCode:      r.status,
		Body:            r.body,
		IsBase64Encoded: r.base64,
	}
}

func isContentType(name string) bool {
	return strings.EqualFold(name, HeaderContentType)
}
