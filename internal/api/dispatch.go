// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ToddHoff/lambda-api/internal/app"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/request"
	"github.com/ToddHoff/lambda-api/internal/response"
	"github.com/ToddHoff/lambda-api/internal/utils"
	"github.com/ToddHoff/lambda-api/models"
)

// invocation is the per-event state threaded through the router.
type invocation struct {
	req *request.Request
	res *response.Response
	err error
}

type invocationKey struct{}

// Run handles a single event and returns its envelope.
//
// The returned error is non-nil only when ctx is done before the handler
// returns; routing failures, handler errors and panics all produce an error
// envelope instead. A handler still running when ctx is done is abandoned and
// its response discarded.
func (a *API) Run(ctx context.Context, event models.Event) (models.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvocationCanceled, err)
	}

	start := time.Now()

	id := event.RequestContext.RequestID
	if id == "" {
		id = a.ids.Generate()
	}

	l := a.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", id).
			Str("method", strings.ToUpper(event.HTTPMethod)).
			Str("path", event.Path)
	})
	ctx = l.WithContext(utils.WithRequestID(ctx, id))

	req := request.New(ctx, event, a.auth)
	req.ID = id

	res := response.New(
		response.WithClock(a.clock),
		response.WithRequestHeaders(req.Headers),
		response.WithLowercaseHeaders(a.lowercase),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.dispatch(req, res)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		err := ctx.Err()
		l.Warn().Err(err).
			Dur("duration", time.Since(start)).
			Msg("invocation abandoned")
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvocationCanceled, err)
	}

	env := res.Envelope()

	l.Debug().Strs("headers", res.HeaderNames()).Msg("response headers")
	l.Info().
		Int("status", env.StatusCode).
		Dur("duration", time.Since(start)).
		Int("size", len(env.Body)).
		Msg("invocation handled")

	return env, nil
}

func (a *API) dispatch(req *request.Request, res *response.Response) {
	inv := &invocation{req: req, res: res}

	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	ctx := context.WithValue(req.Context(), invocationKey{}, inv)
	r, err := http.NewRequestWithContext(ctx, method, "/", nil)
	if err != nil {
		inv.err = ErrMethodNotAllowed
		a.writeError(inv)
		return
	}
	r.URL = &url.URL{Path: path, RawQuery: encodeQuery(req.Query)}

	a.router.ServeHTTP(discardWriter{}, r)

	if inv.err != nil {
		a.writeError(inv)
	}
}

func (a *API) adapt(h HandlerFunc) http.HandlerFunc {
	return func(_ http.ResponseWriter, r *http.Request) {
		inv, ok := r.Context().Value(invocationKey{}).(*invocation)
		if !ok {
			return
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				inv.req.Params[key] = rctx.URLParams.Values[i]
			}
		}

		inv.err = call(h, inv)
	}
}

func call(h HandlerFunc, inv *invocation) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(inv.req.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
		}
	}()

	return h(inv.req, inv.res)
}

func (a *API) notFound(_ http.ResponseWriter, r *http.Request) {
	if inv, ok := r.Context().Value(invocationKey{}).(*invocation); ok {
		inv.err = ErrNotFound
	}
}

func (a *API) methodNotAllowed(_ http.ResponseWriter, r *http.Request) {
	inv, ok := r.Context().Value(invocationKey{}).(*invocation)
	if !ok {
		return
	}

	if r.Method == http.MethodOptions && a.cors != nil {
		a.preflight(inv)
		return
	}
	inv.err = ErrMethodNotAllowed
}

// preflight answers an OPTIONS request for a known path with the configured
// CORS policy and an empty body.
func (a *API) preflight(inv *invocation) {
	inv.res.CORS(a.cors...).Status(http.StatusOK)
	inv.err = inv.res.Send(nil)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) writeError(inv *invocation) {
	status := statusFromError(inv.err)
	msg := messageFromError(inv.err)

	log := logger.FromContext(inv.req.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(inv.err).Int("status", status).Msg("handler failed")
	} else {
		log.Debug().Err(inv.err).Int("status", status).Msg("request rejected")
	}

	inv.res.Status(status).Header(response.HeaderContentType, response.MIMEApplicationJSON)
	if err := inv.res.JSON(errorResponse{Error: msg}); err != nil {
		_ = inv.res.Send(`{"error":"` + app.MsgInternalServerError + `"}`)
	}
}

func encodeQuery(q map[string]string) string {
	if len(q) == 0 {
		return ""
	}
	values := make(url.Values, len(q))
	for k, v := range q {
		values.Set(k, v)
	}
	return values.Encode()
}

// discardWriter satisfies the router's writer; responses are built on the
// invocation's *response.Response instead.
type discardWriter struct{}

func (discardWriter) Header() http.Header         { return http.Header{} }
func (discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (discardWriter) WriteHeader(int)             {}
