// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-base-url", "http://api.local",
		"-timeout", "3s",
		"-user-agent", "ua",
		"-token", "tok",
		"-hash-key", "hk",
		"-rate-limit", "1.5",
		"-rate-burst", "3",
		"-journal-driver", "pgx",
		"-journal-dsn", "postgres://x",
		"-a", "127.0.0.1:9000",
		"-request-timeout", "1m",
		"-verify-key", "vk",
		"-log-level", "warn",
		"-config", "/etc/intercept.json",
	}

	cfg, err := parseFlags(quietFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", cfg.Client.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "ua", cfg.Client.UserAgent)
	assert.Equal(t, "tok", cfg.Client.BearerToken)
	assert.Equal(t, "hk", cfg.Client.HashKey)
	assert.Equal(t, 1.5, cfg.Client.RateLimit)
	assert.Equal(t, 3, cfg.Client.RateBurst)
	assert.Equal(t, "pgx", cfg.Journal.Driver)
	assert.Equal(t, "postgres://x", cfg.Journal.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "vk", cfg.Server.HashKey)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/etc/intercept.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags(quietFlagSet(), []string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NilFlagSet(t *testing.T) {
	cfg, err := parseFlags(nil, []string{"-log-level", "error"})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"bad address", []string{"-a", "nohost"}},
		{"bad duration", []string{"-timeout", "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(quietFlagSet(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

func TestParseFlags_CallerFlagsShareSet(t *testing.T) {
	fs := quietFlagSet()
	method := fs.String("X", "GET", "method")

	cfg, err := parseFlags(fs, []string{"-X", "POST", "-token", "t", "extra"})
	require.NoError(t, err)

	assert.Equal(t, "POST", *method)
	assert.Equal(t, "t", cfg.Client.BearerToken)
	assert.Equal(t, []string{"extra"}, fs.Args())
}
