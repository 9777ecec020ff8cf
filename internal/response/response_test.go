// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToddHoff/lambda-api/internal/headers"
	"github.com/ToddHoff/lambda-api/models"
)

func TestNew_Defaults(t *testing.T) {
	res := New()

	assert.Equal(t, http.StatusOK, res.StatusCode())
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, res.Headers())
	assert.True(t, res.HasHeaders())
	assert.Empty(t, res.Body())
	assert.False(t, res.IsBase64Encoded())
}

func TestResponse_Header_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		set    func(*Response)
		lookup string
		want   string
		wantOK bool
	}{
		{
			name:   "simple value",
			set:    func(r *Response) { r.Header("test", "testVal") },
			lookup: "test",
			want:   "testVal",
			wantOK: true,
		},
		{
			name:   "omitted value stores empty string",
			set:    func(r *Response) { r.Header("test") },
			lookup: "TEST",
			want:   "",
			wantOK: true,
		},
		{
			name:   "several values joined",
			set:    func(r *Response) { r.Header("Vary", "Origin", "Accept") },
			lookup: "vary",
			want:   "Origin, Accept",
			wantOK: true,
		},
		{
			name:   "case variant lookup",
			set:    func(r *Response) { r.Header("TestHeader", "test") },
			lookup: "testheader",
			want:   "test",
			wantOK: true,
		},
		{
			name:   "default content type readable in any case",
			set:    func(r *Response) {},
			lookup: "coNtEnt-TyPe",
			want:   "application/json",
			wantOK: true,
		},
		{
			name:   "missing header",
			set:    func(r *Response) { r.Header("TestHeader", "test") },
			lookup: "test",
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New()
			tt.set(res)

			got, ok := res.GetHeader(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, res.HasHeader(tt.lookup))
		})
	}
}

func TestResponse_Header_Override(t *testing.T) {
	res := New().Header("content-type", "text/html")

	assert.Equal(t, map[string]string{"Content-Type": "text/html"}, res.Headers())
}

func TestResponse_Chaining(t *testing.T) {
	res := New().
		Status(http.StatusCreated).
		Header("TestHeader", "test").
		Header("NewHeader", "test").
		RemoveHeader("testHeader")

	assert.Equal(t, http.StatusCreated, res.StatusCode())
	assert.False(t, res.HasHeader("testheader"))
	assert.True(t, res.HasHeader("NewHeader"))
	assert.Equal(t, map[string]string{
		"Content-Type": "application/json",
		"NewHeader":    "test",
	}, res.Headers())
}

func TestResponse_HeaderFields_Order(t *testing.T) {
	tests := []struct {
		name      string
		lowercase bool
		want      []string
	}{
		{
			name: "display names",
			want: []string{"Content-Type=application/json", "Z-Last=2", "M-Mid=m"},
		},
		{
			name:      "lowercase names",
			lowercase: true,
			want:      []string{"content-type=application/json", "z-last=2", "m-mid=m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New(WithLowercaseHeaders(tt.lowercase)).
				Header("Z-Last", "1").
				Header("A-First", "a").
				Header("M-Mid", "m").
				Header("z-LAST", "2").
				RemoveHeader("a-first")

			var got []string
			for name, value := range res.HeaderFields() {
				got = append(got, name+"="+value)
			}

			assert.Equal(t, tt.want, got)

			names := make([]string, 0, len(tt.want))
			for _, field := range tt.want {
				names = append(names, strings.SplitN(field, "=", 2)[0])
			}
			assert.Equal(t, names, res.HeaderNames())
		})
	}
}

func TestResponse_HasHeaders_AfterRemovingAll(t *testing.T) {
	res := New().RemoveHeader("content-type")

	assert.False(t, res.HasHeaders())

	res.Header("X", "")
	assert.True(t, res.HasHeaders())
}

func TestResponse_RemoveHeader_Absent(t *testing.T) {
	res := New()

	assert.NotPanics(t, func() { res.RemoveHeader("nope") })
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, res.Headers())
}

func TestResponse_Envelope(t *testing.T) {
	res := New().Header("test", "testVal")
	require.NoError(t, res.Status(http.StatusOK).JSON(map[string]string{"method": "get", "status": "ok"}))

	assert.Equal(t, models.Envelope{
		Headers:         map[string]string{"Content-Type": "application/json", "test": "testVal"},
		StatusCode:      http.StatusOK,
		Body:            `{"method":"get","status":"ok"}`,
		IsBase64Encoded: false,
	}, res.Envelope())
}

func TestResponse_Envelope_LowercaseHeaders(t *testing.T) {
	res := New(WithLowercaseHeaders(true)).Header("TestHeader", "test")
	require.NoError(t, res.JSON(map[string]any{}))

	assert.Equal(t, map[string]string{
		"content-type": "application/json",
		"testheader":   "test",
	}, res.Envelope().Headers)
}

func TestResponse_Envelope_IsolatedBetweenResponses(t *testing.T) {
	a := New().Header("X-A", "1")
	b := New().Header("X-B", "2")

	assert.False(t, a.HasHeader("X-B"))
	assert.False(t, b.HasHeader("X-A"))

	env := a.Envelope()
	env.Headers["X-Mutated"] = "yes"
	assert.False(t, a.HasHeader("X-Mutated"))
}

func TestWithRequestHeaders_Nil(t *testing.T) {
	res := New(WithRequestHeaders(nil), WithClock(nil))

	assert.NotNil(t, res.clock)
	assert.Nil(t, res.reqHeaders)

	res = New(WithRequestHeaders(headers.New()))
	assert.NotNil(t, res.reqHeaders)
}
