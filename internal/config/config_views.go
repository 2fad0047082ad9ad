// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// ClientConfig is the view of [StructuredConfig] used by cmd/client.
type ClientConfig struct {
	Client  Client
	Journal Journal
	Log     Log
}

// ServerConfig is the view of [StructuredConfig] used by cmd/server.
type ServerConfig struct {
	Server Server
	Log    Log
}

// GetClientConfig builds and validates the client view. Flags the caller
// registered on fs are parsed together with the configuration flags.
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Client:  cfg.Client,
		Journal: cfg.Journal,
		Log:     cfg.Log,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// GetServerConfig builds and validates the echo server view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(nil, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: cfg.Server,
		Log:    cfg.Log,
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}
