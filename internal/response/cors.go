// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"strconv"
	"time"
)

// CORS response header names.
const (
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderExposeHeaders    = "Access-Control-Expose-Headers"
	HeaderMaxAge           = "Access-Control-Max-Age"
)

// Defaults seeded by the first CORS call of a response.
const (
	DefaultCORSOrigin  = "*"
	DefaultCORSMethods = "GET, PUT, POST, DELETE, OPTIONS"
	DefaultCORSHeaders = "Content-Type, Authorization, Content-Length, X-Requested-With"
)

// corsPolicy is the resolved CORS state of one response.
type corsPolicy struct {
	origin        string
	methods       string
	headers       string
	exposeHeaders string
	maxAge        time.Duration
	credentials   bool
}

// CORSOption overrides one field of the resolved CORS policy. Fields not
// touched by any option keep their previous value.
type CORSOption func(*corsPolicy)

// WithOrigin sets Access-Control-Allow-Origin.
func WithOrigin(origin string) CORSOption {
	return func(p *corsPolicy) { p.origin = origin }
}

// WithMethods sets Access-Control-Allow-Methods.
func WithMethods(methods string) CORSOption {
	return func(p *corsPolicy) { p.methods = methods }
}

// WithHeaders sets Access-Control-Allow-Headers.
func WithHeaders(headers string) CORSOption {
	return func(p *corsPolicy) { p.headers = headers }
}

// WithExposeHeaders sets Access-Control-Expose-Headers. An empty value
// suppresses the header.
func WithExposeHeaders(headers string) CORSOption {
	return func(p *corsPolicy) { p.exposeHeaders = headers }
}

// WithMaxAge sets Access-Control-Max-Age, written in whole seconds. Zero or a
// negative duration suppresses the header.
func WithMaxAge(d time.Duration) CORSOption {
	return func(p *corsPolicy) { p.maxAge = d }
}

// WithMaxAgeMillis is WithMaxAge for a value in milliseconds.
func WithMaxAgeMillis(ms int64) CORSOption {
	return WithMaxAge(time.Duration(ms) * time.Millisecond)
}

// WithCredentials controls Access-Control-Allow-Credentials: true.
func WithCredentials(allow bool) CORSOption {
	return func(p *corsPolicy) { p.credentials = allow }
}

func defaultCORSPolicy() *corsPolicy {
	return &corsPolicy{
		origin:  DefaultCORSOrigin,
		methods: DefaultCORSMethods,
		headers: DefaultCORSHeaders,
	}
}

// CORS merges opts over the response's resolved CORS policy and writes the
// Access-Control-* headers. The first call seeds the defaults; later calls
// only change the fields they name.
func (r *Response) CORS(opts ...CORSOption) *Response {
	if r.cors == nil {
		r.cors = defaultCORSPolicy()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r.cors)
		}
	}

	p := r.cors
	r.headers.Set(HeaderAllowOrigin, p.origin)
	r.headers.Set(HeaderAllowMethods, p.methods)
	r.headers.Set(HeaderAllowHeaders, p.headers)

	r.setOrRemove(HeaderAllowCredentials, "true", p.credentials)
	r.setOrRemove(HeaderExposeHeaders, p.exposeHeaders, p.exposeHeaders != "")
	r.setOrRemove(HeaderMaxAge, strconv.FormatInt(int64(p.maxAge/time.Second), 10), p.maxAge > 0)

	return r
}

func (r *Response) setOrRemove(name, value string, set bool) {
	if set {
		r.headers.Set(name, value)
		return
	}
	r.headers.Remove(name)
}
