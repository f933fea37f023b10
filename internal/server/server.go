package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/handler"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handlers.HTTP.Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Run serves the control API until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
