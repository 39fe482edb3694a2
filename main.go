package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatBureau/pitemp-monitor/handlers"
	"github.com/MatBureau/pitemp-monitor/internal/config"
	"github.com/MatBureau/pitemp-monitor/internal/logging"
	"github.com/MatBureau/pitemp-monitor/internal/metrics"
	"github.com/MatBureau/pitemp-monitor/internal/system"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".", "/etc/tempmon")
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	src, err := system.NewSource(cfg.Source, cfg.ThermalZonePath, cfg.ProbeTimeout)
	if err != nil {
		return err
	}
	policy, err := system.ParsePolicy(cfg.SnapshotPolicy)
	if err != nil {
		return err
	}

	m := metrics.New()
	prober := &system.Prober{
		Source:   src,
		Policy:   policy,
		Logger:   logger,
		Observer: m,
	}

	opts := handlers.RouterOptions{
		Observer:           m,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.MetricsEnabled {
		opts.Metrics = m.Handler()
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handlers.NewRouter(handlers.New(prober, logger), opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving",
			slog.String("addr", cfg.ListenAddr),
			slog.String("source", src.Name()),
			slog.String("snapshot_policy", string(policy)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
