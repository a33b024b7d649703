// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kalluba/kalluba-funding/internal/config"
	myHTTP "github.com/kalluba/kalluba-funding/internal/handler/http"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/metrics"
	"github.com/kalluba/kalluba-funding/internal/server"
	"github.com/kalluba/kalluba-funding/internal/service"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/workers"
	"github.com/kalluba/kalluba-funding/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("kalluba-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a version stamped at build time wins over the configured one
	if buildVersion != "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("postgres", cfg.Storage.DB.DSN != "").Msg("received configs")

	if err = run(log.WithContext(context.Background()), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires storages, services and the HTTP server and blocks until the
// server stops. Every resource opened here is released before it returns.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hasher := service.NewBcryptHasher(cfg.App.PasswordHashCost)

	if !cfg.Storage.SkipSeed {
		if err = store.Seed(ctx, storages.UserRepository, storages.CategoryRepository, storages.ProjectRepository, hasher, time.Now()); err != nil {
			return fmt.Errorf("error seeding storage: %w", err)
		}
	}

	services, err := service.NewServices(storages, hasher, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	proxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return fmt.Errorf("error parsing trusted proxies: %w", err)
	}

	handler := myHTTP.NewHandler(services, metrics.New(), cfg.RateLimit, proxies, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var background []workers.Worker
	if sweeper, ok := storages.RateLimiter.(interface{ Sweep() int }); ok {
		background = append(background, workers.NewRateLimitSweeper(sweeper, cfg.RateLimit.Window, log))
	}
	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(background...).Run(ctx)
		close(workersDone)
	}()

	err = srv.RunServer(ctx)

	cancel()
	<-workersDone

	return err
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
