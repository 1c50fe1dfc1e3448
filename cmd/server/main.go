// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mathkids/internal/adapter"
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/handler"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/server"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/workers"
	"github.com/MKhiriev/go-mathkids/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("mathkids-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Bool("database_configured", cfg.Storage.DB.DSN != "").
		Str("mail_provider", cfg.Mail.Provider).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	mailer, err := adapter.NewMailer(cfg.Mail, cfg.App.IsProduction(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	services, err := service.NewServices(storages, *cfg, mailer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, collector, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	defer handlers.Close()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var database workers.Database
	if storages.Configured {
		database = storages
	}
	backgroundWorkers := workers.NewWorkers(services, database, cfg.Workers, collector, log)
	backgroundWorkers.Start(ctx)
	defer backgroundWorkers.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
