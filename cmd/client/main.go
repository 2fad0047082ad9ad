// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client sends one HTTP request through the interceptor pipeline and
// prints the response.
//
//	client -base-url http://localhost:8080 -X POST -d '{"a":1}' -H 'X-Debug: 1' /echo
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/interceptor/builtin"
	"github.com/MKhiriev/go-intercept/internal/adapter"
	"github.com/MKhiriev/go-intercept/internal/client"
	"github.com/MKhiriev/go-intercept/internal/config"
	"github.com/MKhiriev/go-intercept/internal/journal"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// a missing .env file is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	invFlags := client.RegisterInvocationFlags(fs)
	showMetrics := fs.Bool("metrics", false, "print client metrics to stderr after the request")
	showVersion := fs.Bool("version", false, "print build info and exit")

	cfg, err := config.GetClientConfig(fs, os.Args[1:])
	if err != nil {
		logger.NewClientLogger("intercept-client", "").Fatal().Err(err).Msg("error getting configs")
	}
	if *showVersion {
		printBuildInfo(os.Stdout)
		return
	}

	log := logger.NewClientLogger("intercept-client", cfg.Log.Level)

	inv, err := invFlags.Invocation(fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid request")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsReg := prometheus.NewRegistry()
	err = run(ctx, cfg, inv, metricsReg, log)
	if *showMetrics {
		if derr := dumpMetrics(os.Stderr, metricsReg); derr != nil {
			log.Err(derr).Msg("failed to print metrics")
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, inv client.Invocation, metricsReg *prometheus.Registry, log *logger.Logger) error {
	pipeline := client.Pipeline{
		Metrics: builtin.NewMetrics(metricsReg),
		Logger:  log,
	}

	if cfg.Journal.DSN != "" {
		store, err := journal.Open(ctx, cfg.Journal, log)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer store.Close()
		pipeline.Journal = store
	}

	reg := interceptor.Create(interceptor.WithLogger(log.Logger))
	pipeline.Install(reg, cfg.Client)

	transport, err := adapter.NewHTTPClient(cfg.Client, reg, log)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}

	app, err := client.NewApp(transport, inv, os.Stdout, log)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

func dumpMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
