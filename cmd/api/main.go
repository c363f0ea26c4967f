package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"nextdeparture.onebusaway.org/internal/app"
	"nextdeparture.onebusaway.org/internal/appconf"
	"nextdeparture.onebusaway.org/internal/gtfs"
	"nextdeparture.onebusaway.org/internal/logging"
	"nextdeparture.onebusaway.org/internal/metrics"
)

func main() {
	cfg, err := appconf.Load(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.LevelForEnv(cfg.EnvName))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err, slog.String("component", "main"))
		os.Exit(1)
	}
}

func run(cfg appconf.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gtfsConfig := gtfsConfigFrom(cfg)
	collector := metrics.NewCollector(gtfsConfig.RefreshInterval)

	gtfsManager, err := gtfs.InitGTFSManager(ctx, gtfsConfig, logger, collector)
	if err != nil {
		return fmt.Errorf("failed to initialize GTFS manager: %w", err)
	}
	defer gtfsManager.Shutdown()

	gtfsManager.LogStatistics()

	application := &app.Application{
		Config:      cfg,
		GtfsConfig:  gtfsConfig,
		Logger:      logger,
		GtfsManager: gtfsManager,
		Metrics:     collector,
	}

	handler, closeRoutes := routes(application)
	defer closeRoutes()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			"addr", srv.Addr,
			"env", cfg.Env.String(),
			"route_id", cfg.Route.RouteID,
			"stop_id", cfg.Route.StopID)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func gtfsConfigFrom(cfg appconf.Config) gtfs.Config {
	return gtfs.Config{
		GtfsURL:         cfg.GtfsURL,
		CacheDir:        cfg.CacheDir,
		Timezone:        cfg.Timezone,
		RefreshInterval: cfg.RefreshInterval,
		Verbose:         cfg.Verbose,
	}
}
