// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToddHoff/lambda-api/internal/api"
	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/request"
	"github.com/ToddHoff/lambda-api/internal/response"
	"github.com/ToddHoff/lambda-api/models"
)

// stubInvoker records the last event and answers with a fixed envelope.
type stubInvoker struct {
	event models.Event
	env   models.Envelope
	err   error
}

func (s *stubInvoker) Run(_ context.Context, event models.Event) (models.Envelope, error) {
	s.event = event
	return s.env, s.err
}

type fixedIDs struct{}

func (fixedIDs) Generate() string { return "trace-1" }

func newTestHandler(inv Invoker) *Handler {
	h := NewHandler(inv, config.Server{RequestTimeout: time.Second}, logger.Nop())
	h.ids = fixedIDs{}
	return h
}

func TestInvoke_EventConversion(t *testing.T) {
	// Arrange
	inv := &stubInvoker{env: models.Envelope{StatusCode: http.StatusOK}}
	router := newTestHandler(inv).Init()

	req := httptest.NewRequest(http.MethodPost, "/v1/items?tag=a&tag=b&q=go", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Add("X-Multi", "one")
	req.Header.Add("X-Multi", "two")
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	got := inv.event
	assert.Equal(t, http.MethodPost, got.HTTPMethod)
	assert.Equal(t, "/v1/items", got.Path)
	assert.Equal(t, map[string]string{"tag": "b", "q": "go"}, got.QueryStringParameters)
	assert.Equal(t, "application/json", got.Headers["Content-Type"])
	assert.Equal(t, "one, two", got.Headers["X-Multi"])
	assert.Equal(t, "example.com", got.Headers["Host"])
	assert.Equal(t, `{"name":"x"}`, got.Body)
	assert.False(t, got.IsBase64Encoded)
	assert.Equal(t, "trace-1", got.RequestContext.RequestID)
	assert.Equal(t, "local", got.RequestContext.Stage)
}

func TestInvoke_BinaryBody(t *testing.T) {
	inv := &stubInvoker{env: models.Envelope{StatusCode: http.StatusOK}}
	router := newTestHandler(inv).Init()

	req := httptest.NewRequest(http.MethodPut, "/upload", bytes.NewReader([]byte{0xff, 0xd8, 0xff}))
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, inv.event.IsBase64Encoded)
	assert.Equal(t, "/9j/", inv.event.Body)
}

func TestInvoke_TraceIDFromHeader(t *testing.T) {
	inv := &stubInvoker{env: models.Envelope{StatusCode: http.StatusOK}}
	router := newTestHandler(inv).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "caller-trace")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "caller-trace", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "caller-trace", inv.event.RequestContext.RequestID)
}

func TestInvoke_WritesEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		env        models.Envelope
		wantStatus int
		wantBody   string
		wantHeader map[string]string
	}{
		{
			name: "text body",
			env: models.Envelope{
				Headers:    map[string]string{"Content-Type": "text/html", "X-Extra": "1"},
				StatusCode: http.StatusCreated,
				Body:       "<p>ok</p>",
			},
			wantStatus: http.StatusCreated,
			wantBody:   "<p>ok</p>",
			wantHeader: map[string]string{"Content-Type": "text/html", "X-Extra": "1"},
		},
		{
			name: "base64 body",
			env: models.Envelope{
				Headers:         map[string]string{"Content-Type": "image/png"},
				StatusCode:      http.StatusOK,
				Body:            "iVBORw==",
				IsBase64Encoded: true,
			},
			wantStatus: http.StatusOK,
			wantBody:   "\x89PNG",
			wantHeader: map[string]string{"Content-Type": "image/png"},
		},
		{
			name:       "zero status",
			env:        models.Envelope{Body: "x"},
			wantStatus: http.StatusOK,
			wantBody:   "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(&stubInvoker{env: tt.env}).Init()
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			for k, v := range tt.wantHeader {
				assert.Equal(t, v, rec.Header().Get(k))
			}
		})
	}
}

func TestInvoke_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deadline",
			err:        fmt.Errorf("%w: %w", api.ErrInvocationCanceled, context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   "Invocation timed out\n",
		},
		{
			name:       "canceled",
			err:        fmt.Errorf("%w: %w", api.ErrInvocationCanceled, context.Canceled),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "Invocation canceled\n",
		},
		{
			name:       "unknown",
			err:        io.ErrUnexpectedEOF,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(&stubInvoker{err: tt.err}).Init()
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestInvoke_BodyTooLarge(t *testing.T) {
	inv := &stubInvoker{}
	h := newTestHandler(inv)
	h.maxBodyBytes = 4
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, inv.event.HTTPMethod)
}

func TestInvoke_CustomMethod(t *testing.T) {
	inv := &stubInvoker{env: models.Envelope{StatusCode: http.StatusMultiStatus}}
	rec := httptest.NewRecorder()

	newTestHandler(inv).Init().ServeHTTP(rec, httptest.NewRequest("PROPFIND", "/dav", nil))

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Equal(t, "PROPFIND", inv.event.HTTPMethod)
}

func TestInvoke_ThroughDispatcher(t *testing.T) {
	// Arrange
	a, err := api.New(config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)
	a.Get("/users/{id}", func(req *request.Request, res *response.Response) error {
		return res.Header("X-Request-Id", req.ID).JSON(map[string]string{"id": req.Param("id")})
	})

	srv := httptest.NewServer(newTestHandler(a).Init())
	defer srv.Close()

	// Act
	resp, err := srv.Client().Get(srv.URL + "/users/9")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	missing, err := srv.Client().Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer missing.Body.Close()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "trace-1", resp.Header.Get("X-Request-Id"))
	assert.Equal(t, `{"id":"9"}`, string(body))
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestInvoke_RequestTimeout(t *testing.T) {
	// Arrange
	a, err := api.New(config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)
	release := make(chan struct{})
	defer close(release)
	a.Get("/slow", func(req *request.Request, res *response.Response) error {
		<-release
		return res.JSON(map[string]string{"done": "yes"})
	})

	h := NewHandler(a, config.Server{RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	rec := httptest.NewRecorder()

	// Act
	start := time.Now()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	// Assert
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "Invocation timed out\n", rec.Body.String())
}

func TestInvoke_Panic(t *testing.T) {
	router := newTestHandler(panicInvoker{}).Init()
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type panicInvoker struct{}

func (panicInvoker) Run(context.Context, models.Event) (models.Envelope, error) {
	panic("emulator bug")
}
