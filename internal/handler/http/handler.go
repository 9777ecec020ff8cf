package http

import (
	"context"
	"time"

	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/utils"
	"github.com/ToddHoff/lambda-api/models"
)

// DefaultMaxBodyBytes caps inbound bodies at the proxy integration's payload
// limit.
const DefaultMaxBodyBytes = 6 << 20

// Invoker runs a single proxy event.
type Invoker interface {
	Run(ctx context.Context, event models.Event) (models.Envelope, error)
}

type Handler struct {
	invoker Invoker

	timeout      time.Duration
	maxBodyBytes int64
	stage        string

	ids    utils.IDGenerator
	logger *logger.Logger
}

func NewHandler(invoker Invoker, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Dur("timeout", cfg.RequestTimeout).Msg("http handler created")
	return &Handler{
		invoker:      invoker,
		timeout:      cfg.RequestTimeout,
		maxBodyBytes: DefaultMaxBodyBytes,
		stage:        "local",
		ids:          utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
