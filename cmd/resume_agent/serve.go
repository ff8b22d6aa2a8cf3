package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/server"
	"github.com/jonathan/resume-optimizer/internal/store"
	"github.com/jonathan/resume-optimizer/internal/telemetry"
)

// version is reported to the tracing backend
var version = "dev"

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the scoring and optimization operations
as REST endpoints.

A score cache is used when redis.addr is set, run history is persisted when
database.url is set, and traces are exported when telemetry.endpoint is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Endpoint, version)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	opts := server.Options{Logger: logger}

	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		opts.Cache = redisCache
	}

	if cfg.Database.URL != "" {
		var st store.Store
		st, err = openStore(ctx, cfg, logger)
		if err != nil {
			if opts.Cache != nil {
				_ = opts.Cache.Close()
			}
			return fmt.Errorf("failed to open history store: %w", err)
		}
		opts.Store = st
	}

	srv, err := server.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
