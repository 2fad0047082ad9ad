// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/logger"
)

// Handler serves the echo upstream routes.
type Handler struct {
	hashKey        []byte
	requestTimeout time.Duration
	metrics        *serverMetrics

	logger *logger.Logger
}

// NewHandler builds a Handler from the server section. A non-empty HashKey
// turns on signature verification for /echo.
func NewHandler(cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
	if cfg.HashKey != "" {
		h.hashKey = []byte(cfg.HashKey)
	}
	return h
}
