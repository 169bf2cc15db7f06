// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address so that a bad address fails before
// the server is reported as running.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before listen.
func (h *httpServer) Addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return h.server.Addr
}

func (h *httpServer) RunServer() {
	if h.listener == nil {
		if err := h.listen(); err != nil {
			h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server listen")
			return
		}
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown(ctx context.Context) {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTP server Shutdown")
	}
}
