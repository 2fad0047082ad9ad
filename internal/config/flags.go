// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags binds the configuration flags to fs. The returned config is
// filled in when fs is parsed.
//
// Flags:
//
//	-base-url        base URL for relative request URLs
//	-timeout         default exchange timeout (e.g. "10s")
//	-user-agent      User-Agent header value
//	-token           bearer token
//	-hash-key        HMAC key for HashSHA256 payload signing
//	-rate-limit      requests per second, 0 disables limiting
//	-rate-burst      rate limiter burst
//	-journal-driver  journal driver: sqlite3 or pgx
//	-journal-dsn     journal DSN, empty disables the journal
//	-a               echo server address in format [host]:[port]
//	-request-timeout echo server request timeout
//	-verify-key      echo server HashSHA256 verification key
//	-log-level       zerolog level name
//	-c/-config       json file path with configs
func RegisterFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Client.BaseURL, "base-url", "", "Base URL for relative request URLs")
	fs.DurationVar(&cfg.Client.Timeout, "timeout", 0, "Default exchange timeout (e.g., 10s)")
	fs.StringVar(&cfg.Client.UserAgent, "user-agent", "", "User-Agent header value")
	fs.StringVar(&cfg.Client.BearerToken, "token", "", "Bearer token")
	fs.StringVar(&cfg.Client.HashKey, "hash-key", "", "Payload signing key")
	fs.Float64Var(&cfg.Client.RateLimit, "rate-limit", 0, "Requests per second, 0 disables limiting")
	fs.IntVar(&cfg.Client.RateBurst, "rate-burst", 0, "Rate limiter burst")

	fs.StringVar(&cfg.Journal.Driver, "journal-driver", "", "Journal driver: sqlite3 or pgx")
	fs.StringVar(&cfg.Journal.DSN, "journal-dsn", "", "Journal DSN, empty disables the journal")

	fs.Func("a", "Net address host:port", func(s string) error {
		var addr NetAddress
		if err := addr.Set(s); err != nil {
			return err
		}
		cfg.Server.Address = addr.String()
		return nil
	})
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Server.HashKey, "verify-key", "", "HashSHA256 verification key")

	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	return cfg
}

// parseFlags registers the configuration flags on fs and parses args.
// A nil fs gets a private ContinueOnError set.
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	if fs == nil {
		fs = flag.NewFlagSet("config", flag.ContinueOnError)
	}
	cfg := RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
