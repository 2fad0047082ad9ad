// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the echo upstream used to exercise the intercepting
// client.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-intercept/internal/config"
	handler "github.com/MKhiriev/go-intercept/internal/handler/http"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/internal/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("echo-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel(os.Stdout, "echo-server", cfg.Log.Level)
	log.Debug().Str("address", cfg.Server.Address).Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("verify_signatures", cfg.Server.HashKey != "").Msg("received configs")

	h := handler.NewHandler(cfg.Server, log).WithMetrics(prometheus.NewRegistry())

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
