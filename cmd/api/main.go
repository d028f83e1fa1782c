package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goalside/sportsdata/internal/app"
	"github.com/goalside/sportsdata/internal/config"
	"github.com/goalside/sportsdata/internal/observability"
	"github.com/goalside/sportsdata/internal/platform/logging"
	"github.com/goalside/sportsdata/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.SlogLevel(cfg.LogLevel),
	}))
	clientLogger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(clientLogger)

	shutdownUptrace, err := observability.InitUptrace(cfg, clientLogger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof", "error", err)
		os.Exit(1)
	}

	srv, services, err := app.NewHTTPServer(cfg, logger, clientLogger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	if cfg.WarmupOnStart {
		go func() {
			warmupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			result, err := services.Warmups.Warmup(warmupCtx, usecase.WarmupInput{MaxWorkers: cfg.WarmupMaxWorkers})
			if err != nil {
				logger.Error("startup warmup failed", "error", err)
				return
			}
			logger.Info("startup warmup finished",
				"task_count", result.TaskCount,
				"success_count", result.SuccessCount,
				"failed_count", result.FailedCount,
			)
		}()
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		logger.Error("stop pprof failed", "error", err)
	}
	if err := stopPyroscope(); err != nil {
		logger.Error("stop pyroscope failed", "error", err)
	}
	if err := shutdownUptrace(shutdownCtx); err != nil {
		logger.Error("uptrace shutdown failed", "error", err)
	}
	_ = clientLogger.Sync()

	logger.Info("http server stopped")
}
