// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-intercept/internal/adapter"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/models"
)

// App sends a single [Invocation] and renders the response to out.
type App struct {
	transport adapter.Transport
	inv       Invocation
	out       io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns an App sending inv through transport. log may be nil.
//
// Returns [ErrNoTransport] or [ErrNoURL] for an unusable invocation.
func NewApp(transport adapter.Transport, inv Invocation, out io.Writer, log *logger.Logger) (*App, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}
	if inv.URL == "" {
		return nil, ErrNoURL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{transport: transport, inv: inv, out: out, logger: log}, nil
}

// Run sends the request. Whatever response came back is rendered, even when
// the exchange failed; the returned error is the transport's.
func (a *App) Run(ctx context.Context) error {
	req := models.NewRequest(ctx, a.inv.Method, a.inv.URL)
	if a.inv.Headers != nil {
		req.Headers = a.inv.Headers.Clone()
	}
	if a.inv.Body != "" {
		req.Body = []byte(a.inv.Body)
	}
	req.ResponseType = a.inv.ResponseType

	resp, err := a.transport.Do(req)
	if resp != nil {
		if rerr := renderResponse(a.out, resp, a.inv.Verbose); rerr != nil {
			a.logger.Err(rerr).Msg("failed to render response")
		}
	}
	return err
}
