package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ToddHoff/lambda-api/internal/config"
	"github.com/ToddHoff/lambda-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer returns a Server listening on cfg.HTTPAddress with handler.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")
	if cfg.HTTPAddress == "" || handler == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done, then shuts the listener down and waits for
// in-flight requests.
func (s *server) run(ctx context.Context) {
	served := make(chan struct{})

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		s.httpServer.RunServer()
		close(served)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-served:
		s.logger.Warn().Msg("HTTP server stopped")
	}
}
