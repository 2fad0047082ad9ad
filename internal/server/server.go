// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// NewServer wraps handler in an HTTP server listening on cfg.Address.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.Address == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", cfg.Address).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		address:    cfg.Address,
		logger:     logger,
		stop:       make(chan struct{}),
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	return s.serve(ctx, ln)
}

// serve runs the HTTP server on ln until ctx ends, Shutdown is called or the
// listener fails, then drains in-flight requests.
func (s *server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-s.stop:
	}

	s.httpServer.shutdown()
	if err := <-errCh; err != nil {
		return err
	}
	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
