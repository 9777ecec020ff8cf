// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CacheControlNoStore is written by Cache(false).
const CacheControlNoStore = "no-cache, no-store, must-revalidate"

// Cache sets Cache-Control (and Expires for durations).
//
//   - false: no-cache, no-store, must-revalidate.
//   - true: max-age=0.
//   - time.Duration: max-age in whole seconds plus a matching Expires.
//   - int / int64: like time.Duration, in milliseconds.
//   - string: written verbatim.
//
// private prefixes the directive with "private, ". Other values leave the
// headers unchanged.
func (r *Response) Cache(v any, private bool) *Response {
	var directive string
	switch t := v.(type) {
	case bool:
		if !t {
			r.headers.Set(HeaderCacheControl, CacheControlNoStore)
			return r
		}
		directive = "max-age=0"
	case time.Duration:
		directive = r.maxAge(t)
	case int:
		directive = r.maxAge(time.Duration(t) * time.Millisecond)
	case int64:
		directive = r.maxAge(time.Duration(t) * time.Millisecond)
	case string:
		directive = t
	default:
		return r
	}

	if private && !strings.HasPrefix(directive, "private") {
		directive = "private, " + directive
	}
	r.headers.Set(HeaderCacheControl, directive)
	return r
}

func (r *Response) maxAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	r.headers.Set(HeaderExpires, FormatHTTPDate(r.clock.Now().Add(d)))
	return "max-age=" + strconv.FormatInt(int64(d/time.Second), 10)
}

// ETag enables or disables an ETag computed from the final body when the
// envelope is built. When the request's If-None-Match matches, the envelope
// becomes a bodiless 304.
func (r *Response) ETag(enabled bool) *Response {
	r.etag = enabled
	if !enabled {
		r.headers.Remove(HeaderETag)
	}
	return r
}

func (r *Response) applyETag() {
	if !r.etag {
		return
	}
	r.etag = false

	sum := md5.Sum([]byte(r.body))
	tag := `"` + hex.EncodeToString(sum[:]) + `"`
	r.headers.Set(HeaderETag, tag)

	if r.reqHeaders == nil || r.status != http.StatusOK {
		return
	}
	if inm, ok := r.reqHeaders.Get(HeaderIfNoneMatch); ok && etagMatches(inm, tag) {
		r.status = http.StatusNotModified
		r.setBody("", false)
	}
}

func etagMatches(ifNoneMatch, tag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}
