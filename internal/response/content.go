// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"encoding/base64"
	"fmt"
	"html"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/ToddHoff/lambda-api/internal/utils"
)

// JSON serializes v without extra whitespace and makes it the body. The
// Content-Type becomes application/json unless handler code set one
// explicitly.
func (r *Response) JSON(v any) error {
	body, err := marshal(v)
	if err != nil {
		return err
	}

	if !r.contentTypeSet {
		r.headers.Set(HeaderContentType, MIMEApplicationJSON)
	}
	r.setBody(body, false)
	return nil
}

// HTML sets Content-Type text/html and makes content the body. Strings are
// written verbatim; any other value is serialized as JSON text.
func (r *Response) HTML(content any) error {
	r.headers.Set(HeaderContentType, MIMETextHTML)
	return r.Send(content)
}

// Send writes content as the body without touching Content-Type.
//
// Strings are written verbatim, byte slices go through [Response.SendBytes],
// nil clears the body, and any other value is serialized as JSON.
func (r *Response) Send(content any) error {
	switch v := content.(type) {
	case nil:
		r.setBody("", false)
	case string:
		r.setBody(v, false)
	case []byte:
		r.SendBytes(v)
	default:
		body, err := marshal(v)
		if err != nil {
			return err
		}
		r.setBody(body, false)
	}
	return nil
}

// SendBytes writes b as the body. Textual content types (per the current
// Content-Type) are written as-is; anything else is base64-encoded and the
// envelope is flagged with isBase64Encoded.
func (r *Response) SendBytes(b []byte) *Response {
	if isTextual(r.headers.Value(HeaderContentType)) {
		r.setBody(string(b), false)
		return r
	}

	r.setBody(base64.StdEncoding.EncodeToString(b), true)
	return r
}

// SendStatus sets code and uses its reason phrase as a plain body.
func (r *Response) SendStatus(code int) error {
	r.Status(code)
	return r.Send(http.StatusText(code))
}

// Type sets Content-Type either verbatim (when t contains "/") or from a file
// extension such as "html" or ".png". Unknown extensions leave the header
// unchanged.
func (r *Response) Type(t string) *Response {
	if strings.Contains(t, "/") {
		return r.Header(HeaderContentType, t)
	}

	ext := "." + strings.TrimPrefix(t, ".")
	if ct := mime.TypeByExtension(ext); ct != "" {
		r.Header(HeaderContentType, ct)
	}
	return r
}

// Location sets the Location header, escaping the URL where needed.
func (r *Response) Location(target string) *Response {
	if u, err := url.Parse(target); err == nil {
		target = u.String()
	}
	r.headers.Set(HeaderLocation, target)
	return r
}

// Redirect points the client at target with status (302 when omitted) and an
// HTML body linking to it.
func (r *Response) Redirect(target string, status ...int) error {
	code := http.StatusFound
	if len(status) > 0 {
		code = status[0]
	}
	if code < 300 || code > 399 {
		return fmt.Errorf("%w: got %d", ErrInvalidRedirectStatus, code)
	}

	r.Location(target)
	loc := html.EscapeString(r.headers.Value(HeaderLocation))

	r.Status(code)
	return r.HTML(fmt.Sprintf(`<p>%d Redirecting to <a href="%s">%s</a></p>`, code, loc, loc))
}

func (r *Response) setBody(body string, encoded bool) {
	r.body = body
	r.base64 = encoded
}

func marshal(v any) (string, error) {
	body, err := utils.JSON.MarshalToString(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshalBody, err)
	}
	return body, nil
}

func isTextual(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch {
	case strings.HasPrefix(mediaType, "text/"),
		strings.HasSuffix(mediaType, "+json"),
		strings.HasSuffix(mediaType, "+xml"):
		return true
	}

	switch mediaType {
	case "application/json",
		"application/xml",
		"application/javascript",
		"application/x-www-form-urlencoded":
		return true
	default:
		return false
	}
}
