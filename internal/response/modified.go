// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"net/http"
	"time"

	"github.com/araddon/dateparse"
)

// Modified sets or clears Last-Modified.
//
//   - nil or true: the current time.
//   - false: the header is removed (the latest call wins).
//   - time.Time / *time.Time: that instant.
//   - string: the parsed date; an unparseable string falls back to the
//     current time rather than failing the response.
//
// A date outside years 0000-9999 also falls back to the current time.
//
// Any other value is treated like true. The header value is always an
// IMF-fixdate in GMT.
func (r *Response) Modified(v any) *Response {
	switch t := v.(type) {
	case nil:
		r.setLastModified(r.clock.Now())
	case bool:
		if !t {
			r.headers.Remove(HeaderLastModified)
			return r
		}
		r.setLastModified(r.clock.Now())
	case time.Time:
		r.setLastModified(t)
	case *time.Time:
		if t == nil {
			r.setLastModified(r.clock.Now())
			return r
		}
		r.setLastModified(*t)
	case string:
		parsed, ok := ParseDate(t)
		if !ok {
			parsed = r.clock.Now()
		}
		r.setLastModified(parsed)
	default:
		r.setLastModified(r.clock.Now())
	}
	return r
}

func (r *Response) setLastModified(t time.Time) {
	if !inHTTPDateRange(t) {
		t = r.clock.Now()
	}
	r.headers.Set(HeaderLastModified, FormatHTTPDate(t))
}

// The IMF-fixdate grammar allows exactly four year digits.
var (
	minHTTPDate = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxHTTPDate = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func inHTTPDateRange(t time.Time) bool {
	return !t.Before(minHTTPDate) && !t.After(maxHTTPDate)
}

// FormatHTTPDate formats t as an RFC 7231 IMF-fixdate,
// e.g. "Wed, 01 Aug 2018 00:00:00 GMT". Instants outside years 0000-9999
// are clamped to the nearest representable date.
func FormatHTTPDate(t time.Time) string {
	switch {
	case t.Before(minHTTPDate):
		t = minHTTPDate
	case t.After(maxHTTPDate):
		t = maxHTTPDate
	}
	return t.UTC().Format(http.TimeFormat)
}

// ParseDate parses s as an HTTP-date or any common date layout. Dates without
// a zone are taken as UTC. It reports false when s is not a date.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := http.ParseTime(s); err == nil {
		return t, true
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
