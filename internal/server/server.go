// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/handler"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

const (
	readHeaderTimeout      = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

var shutdownSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// stop is closed to request shutdown without an OS signal.
	stop chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: shutdownTimeout,
		stop:            make(chan struct{}),
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	if err := s.httpServer.listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	serveDone := make(chan struct{})
	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")
	go func() {
		s.httpServer.RunServer()
		close(serveDone)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case <-s.stop:
	case <-serveDone:
		return errServerStopped
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.Shutdown(shutdownCtx)
	<-serveDone
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
