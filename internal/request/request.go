// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package request builds the handler-facing view of an inbound proxy event.
//
// The derived fields (Auth, ClientType, ClientCountry) are computed exactly
// once, when the request is constructed, by pure parse-or-default functions
// that never fail.
package request

import (
	"context"
	"encoding/base64"
	"mime"
	"strings"

	"github.com/ToddHoff/lambda-api/internal/headers"
	"github.com/ToddHoff/lambda-api/internal/utils"
	"github.com/ToddHoff/lambda-api/models"
)

// HeaderContentType is the request header inspected for body decoding.
const HeaderContentType = "Content-Type"

// Request is the normalized inbound request for a single invocation.
type Request struct {
	// ID identifies the invocation in logs and the X-Request-Id header.
	ID string

	// Method is the upper-cased HTTP method.
	Method string

	// Path is the request path as received.
	Path string

	// Headers is a case-insensitive view of the request headers.
	Headers *headers.Store

	// Query holds the query string parameters.
	Query map[string]string

	// Params holds the path parameters captured by the matched route.
	Params map[string]string

	// RawBody is the body as bytes after base64 decoding (if any).
	RawBody []byte

	// Body is the decoded JSON body when the content type is JSON and the
	// payload is valid JSON; otherwise it is RawBody as a string.
	Body any

	// Stage is the deployment stage from the request context.
	Stage string

	// Auth is the parsed Authorization header.
	Auth models.Auth

	// ClientType and ClientCountry come from the edge proxy viewer headers.
	ClientType    models.ClientType
	ClientCountry string

	ctx context.Context
}

// New builds a Request from event, parsing the Authorization header with
// parser (the built-in schemes when parser is nil). It never fails: an
// undecodable base64 body or invalid JSON is kept raw.
func New(ctx context.Context, event models.Event, parser *AuthParser) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	if parser == nil {
		parser = defaultAuthParser
	}

	h := headers.FromMap(event.Headers)
	query := event.QueryStringParameters
	if query == nil {
		query = map[string]string{}
	}

	r := &Request{
		ID:      event.RequestContext.RequestID,
		Method:  strings.ToUpper(event.HTTPMethod),
		Path:    event.Path,
		Headers: h,
		Query:   query,
		Params:  map[string]string{},
		Stage:   event.RequestContext.Stage,
		Auth:    parser.Parse(h.Value(HeaderAuthorization)),
		ctx:     ctx,
	}

	cc := ParseClientContext(h)
	r.ClientType = cc.Type
	r.ClientCountry = cc.Country

	r.RawBody = decodeBody(event)
	r.Body = parseBody(h.Value(HeaderContentType), r.RawBody)

	return r
}

// Context returns the invocation context.
func (r *Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext returns a shallow copy of r carrying ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	r2 := *r
	r2.ctx = ctx
	return &r2
}

// Header returns the value of the named request header, or "" when absent.
func (r *Request) Header(name string) string {
	return r.Headers.Value(name)
}

// Param returns the named path parameter, or "" when the route did not
// capture it.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// ClientContext returns the viewer fields as a single value.
func (r *Request) ClientContext() models.ClientContext {
	return models.ClientContext{Type: r.ClientType, Country: r.ClientCountry}
}

func decodeBody(event models.Event) []byte {
	if !event.IsBase64Encoded {
		return []byte(event.Body)
	}

	b, err := base64.StdEncoding.DecodeString(event.Body)
	if err != nil {
		return []byte(event.Body)
	}
	return b
}

func parseBody(contentType string, raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	if !isJSON(contentType) {
		return string(raw)
	}

	var v any
	if err := utils.JSON.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
