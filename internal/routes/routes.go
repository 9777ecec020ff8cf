// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import (
	"fmt"
	"net/http"

	"github.com/ToddHoff/lambda-api/internal/api"
	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/request"
	"github.com/ToddHoff/lambda-api/internal/response"
	"github.com/ToddHoff/lambda-api/internal/utils"
	"github.com/ToddHoff/lambda-api/models"
)

// Routes holds the dependencies of the demo handlers.
type Routes struct {
	version  string
	build    models.AppBuildInfo
	cors     config.CORS
	verifier utils.TokenVerifier
	logger   *logger.Logger
}

// New returns the demo routes. A nil verifier leaves /whoami unregistered.
func New(cfg config.StructuredConfig, build models.AppBuildInfo, verifier utils.TokenVerifier, l *logger.Logger) *Routes {
	if l == nil {
		l = logger.Nop()
	}
	return &Routes{
		version:  cfg.App.Version,
		build:    build,
		cors:     cfg.CORS,
		verifier: verifier,
		logger:   l,
	}
}

// NewVerifier returns the JWT verifier for cfg, or nil when no sign key is
// configured.
func NewVerifier(cfg config.App) utils.TokenVerifier {
	if cfg.TokenSignKey == "" {
		return nil
	}
	return utils.NewJWTVerifier(cfg.TokenSignKey, cfg.TokenIssuer)
}

// Register adds the demo handlers to a.
func (rt *Routes) Register(a *api.API) {
	a.Get("/health", rt.health)
	a.Get("/auth", rt.auth)
	a.Get("/client", rt.client)
	a.Get("/modified", rt.modified)
	a.Get("/cors", rt.corsHeaders)
	a.Post("/echo", rt.echo)

	if rt.verifier != nil {
		a.Get("/whoami", rt.whoami)
	} else {
		rt.logger.Warn().Msg("token sign key is not set, /whoami is disabled")
	}
}

type buildInfo struct {
	Version string `json:"version,omitempty"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

type healthResponse struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Build   buildInfo `json:"build"`
}

func (rt *Routes) health(_ *request.Request, res *response.Response) error {
	return res.JSON(healthResponse{
		Status:  "ok",
		Version: rt.version,
		Build: buildInfo{
			Version: rt.build.BuildVersion(),
			Date:    rt.build.BuildDate(),
			Commit:  rt.build.BuildCommit(),
		},
	})
}

type authResponse struct {
	Auth models.Auth `json:"auth"`
}

func (rt *Routes) auth(req *request.Request, res *response.Response) error {
	return res.JSON(authResponse{Auth: req.Auth})
}

func (rt *Routes) client(req *request.Request, res *response.Response) error {
	return res.JSON(req.ClientContext())
}

type modifiedResponse struct {
	LastModified string `json:"lastModified"`
}

// modified sets Last-Modified from ?since=<date>, or the current time when
// the parameter is absent.
func (rt *Routes) modified(req *request.Request, res *response.Response) error {
	var since any
	if v, ok := req.Query["since"]; ok {
		since = v
	}

	res.Modified(since)
	lm, _ := res.GetHeader(response.HeaderLastModified)
	return res.JSON(modifiedResponse{LastModified: lm})
}

func (rt *Routes) corsHeaders(_ *request.Request, res *response.Response) error {
	opts := []response.CORSOption{
		response.WithExposeHeaders(rt.cors.ExposeHeaders),
		response.WithMaxAge(rt.cors.MaxAge),
		response.WithCredentials(rt.cors.Credentials),
	}
	if rt.cors.Origin != "" {
		opts = append(opts, response.WithOrigin(rt.cors.Origin))
	}
	if rt.cors.Methods != "" {
		opts = append(opts, response.WithMethods(rt.cors.Methods))
	}
	if rt.cors.Headers != "" {
		opts = append(opts, response.WithHeaders(rt.cors.Headers))
	}

	return res.CORS(opts...).JSON(struct{}{})
}

type echoResponse struct {
	Body any `json:"body"`
}

func (rt *Routes) echo(req *request.Request, res *response.Response) error {
	return res.Status(http.StatusOK).JSON(echoResponse{Body: req.Body})
}

type whoamiResponse struct {
	Subject   string `json:"subject"`
	Issuer    string `json:"issuer,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

func (rt *Routes) whoami(req *request.Request, res *response.Response) error {
	if req.Auth.Type != models.AuthBearer {
		return fmt.Errorf("%w: bearer token required", api.ErrUnauthorized)
	}

	token, err := rt.verifier.Verify(req.Auth.Value)
	if err != nil {
		logger.FromContext(req.Context()).Debug().Err(err).Msg("token rejected")
		return fmt.Errorf("%w: invalid token", api.ErrUnauthorized)
	}

	out := whoamiResponse{Subject: token.Subject, Issuer: token.Issuer}
	if token.ExpiresAt != nil {
		out.ExpiresAt = token.ExpiresAt.Unix()
	}
	return res.JSON(out)
}
