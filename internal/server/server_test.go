// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pong() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(nil, config.Server{Address: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(pong(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)

	srv, err := NewServer(pong(), config.Server{Address: "localhost:0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func startServer(t *testing.T, ctx context.Context) (*server, string, <-chan error) {
	t.Helper()
	srv, err := NewServer(pong(), config.Server{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := srv.(*server)
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	return s, "http://" + ln.Addr().String(), done
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, url, done := startServer(t, ctx)

	assert.Equal(t, "pong", get(t, url))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestServe_StopsOnShutdown(t *testing.T) {
	s, url, done := startServer(t, context.Background())

	assert.Equal(t, "pong", get(t, url))

	s.Shutdown()
	s.Shutdown()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv, err := NewServer(pong(), config.Server{Address: busy.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run()
	assert.ErrorContains(t, err, "listen on")
}
