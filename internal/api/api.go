// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/request"
	"github.com/ToddHoff/lambda-api/internal/response"
	"github.com/ToddHoff/lambda-api/internal/utils"
)

// HandlerFunc handles one invocation. A returned error replaces whatever the
// handler wrote with a JSON error envelope.
type HandlerFunc func(req *request.Request, res *response.Response) error

// API routes events to handlers. Routes must be registered before the first
// call to Run; after that an API is safe for concurrent use.
type API struct {
	router *chi.Mux

	base      string
	lowercase bool

	// cors is nil when automatic preflight handling is disabled.
	cors []response.CORSOption

	auth  *request.AuthParser
	clock response.Clock
	ids   utils.IDGenerator

	logger *logger.Logger
}

// Option configures an API at construction.
type Option func(*API)

// WithClock replaces the clock handed to every response.
func WithClock(c response.Clock) Option {
	return func(a *API) {
		a.clock = c
	}
}

// WithIDGenerator replaces the generator of request IDs for events that
// carry none.
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(a *API) {
		if g != nil {
			a.ids = g
		}
	}
}

// New builds an API from the App, CORS and Auth sections of cfg.
func New(cfg config.StructuredConfig, l *logger.Logger, opts ...Option) (*API, error) {
	if l == nil {
		l = logger.Nop()
	}

	parser, err := request.NewAuthParser(cfg.Auth.Schemes...)
	if err != nil {
		return nil, fmt.Errorf("error creating auth parser: %w", err)
	}

	a := &API{
		router:    chi.NewRouter(),
		base:      normalizeBase(cfg.App.Base),
		lowercase: cfg.App.LowercaseHeaders,
		cors:      corsOptions(cfg.CORS),
		auth:      parser,
		ids:       utils.NewUUIDGenerator(),
		logger:    l,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.router.NotFound(a.notFound)
	a.router.MethodNotAllowed(a.methodNotAllowed)

	l.Info().Str("base", a.base).Bool("preflight", a.cors != nil).Msg("api created")
	return a, nil
}

// Get registers h for GET requests to path.
func (a *API) Get(path string, h HandlerFunc) { a.handle(http.MethodGet, path, h) }

// Post registers h for POST requests to path.
func (a *API) Post(path string, h HandlerFunc) { a.handle(http.MethodPost, path, h) }

// Put registers h for PUT requests to path.
func (a *API) Put(path string, h HandlerFunc) { a.handle(http.MethodPut, path, h) }

// Patch registers h for PATCH requests to path.
func (a *API) Patch(path string, h HandlerFunc) { a.handle(http.MethodPatch, path, h) }

// Delete registers h for DELETE requests to path.
func (a *API) Delete(path string, h HandlerFunc) { a.handle(http.MethodDelete, path, h) }

// Head registers h for HEAD requests to path.
func (a *API) Head(path string, h HandlerFunc) { a.handle(http.MethodHead, path, h) }

// Options registers h for OPTIONS requests to path. An explicit handler takes
// precedence over automatic preflight responses.
func (a *API) Options(path string, h HandlerFunc) { a.handle(http.MethodOptions, path, h) }

// Any registers h for every method on path.
func (a *API) Any(path string, h HandlerFunc) {
	a.router.Handle(a.pattern(path), a.adapt(h))
}

// Method registers h for an arbitrary method, such as a WebDAV verb.
func (a *API) Method(method, path string, h HandlerFunc) {
	method = strings.ToUpper(method)
	chi.RegisterMethod(method)
	a.handle(method, path, h)
}

func (a *API) handle(method, path string, h HandlerFunc) {
	a.router.MethodFunc(method, a.pattern(path), a.adapt(h))
}

// Routes lists the registered route patterns with their methods, e.g.
// "GET /v1/users/{id}".
func (a *API) Routes() []string {
	var out []string
	_ = chi.Walk(a.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, method+" "+route)
		return nil
	})
	return out
}

func (a *API) pattern(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return a.base + path
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	base = strings.TrimRight(base, "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

func corsOptions(cfg config.CORS) []response.CORSOption {
	if !cfg.Enabled {
		return nil
	}

	opts := make([]response.CORSOption, 0, 6)
	if cfg.Origin != "" {
		opts = append(opts, response.WithOrigin(cfg.Origin))
	}
	if cfg.Methods != "" {
		opts = append(opts, response.WithMethods(cfg.Methods))
	}
	if cfg.Headers != "" {
		opts = append(opts, response.WithHeaders(cfg.Headers))
	}
	opts = append(opts,
		response.WithExposeHeaders(cfg.ExposeHeaders),
		response.WithMaxAge(cfg.MaxAge),
		response.WithCredentials(cfg.Credentials),
	)
	return opts
}
