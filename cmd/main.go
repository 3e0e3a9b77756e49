package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/ohbehave/internal/adapters/http/api"
	"github.com/okian/ohbehave/internal/adapters/http/site"
	"github.com/okian/ohbehave/internal/adapters/http/swagger"
	"github.com/okian/ohbehave/internal/adapters/sheets"
	service "github.com/okian/ohbehave/internal/app"
	"github.com/okian/ohbehave/internal/config"
	"github.com/okian/ohbehave/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	asmp, err := cfg.Assumptions()
	if err != nil {
		os.Stderr.WriteString("invalid assumptions config: " + err.Error() + "\n")
		return
	}

	source := sheets.NewClient(
		sheets.WithSpreadsheet(cfg.SpreadsheetID, cfg.SheetRange),
		sheets.WithCredentialsFile(cfg.CredentialsPath),
		sheets.WithCache(cfg.CachePath, cfg.CacheMaxAge()),
		sheets.WithIgnoreCache(cfg.IgnoreCache),
		sheets.WithLogger(log.Named("sheets")),
	)

	svc := service.New(
		service.WithSource(source),
		service.WithAssumptions(asmp),
		service.WithExclusions(cfg.ExcludeGaming, cfg.ExcludeAlcohol, cfg.ExcludeSleep),
		service.WithLogger(log.Named("service")),
	)

	// Build the tables once before serving; /refresh rebuilds on demand.
	if err := svc.Build(ctx); err != nil {
		log.Error(ctx, "initial build failed", logger.Error(err))
		return
	}

	// HTTP mux and routes.
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	site.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
