package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "orderscope/docs"
	"orderscope/pkg/api"
	"orderscope/pkg/compare"
	"orderscope/pkg/config"
	"orderscope/pkg/lifetime"
	"orderscope/pkg/logger"
	"orderscope/pkg/order"
	"orderscope/pkg/order/memory"
	"orderscope/pkg/otel"
)

// @title OrderScope API
// @version 1.0
// @description Observes transient, scoped and singleton order store lifetimes
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Stderr, logger.LevelError, "orderscope", nil).Error(ctx, "config", "error", err)
		return err
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), "orderscope", otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "orderscope", Host: cfg.OTELHost, Probability: cfg.OTELProbability})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	registry, err := lifetime.NewRegistry(func() order.Store { return memory.New(log) }, log)
	if err != nil {
		log.Error(ctx, "lifetime registry", "error", err)
		return err
	}
	defer func() {
		if err := registry.Close(context.Background()); err != nil {
			log.Error(context.Background(), "close registry", "error", err)
		}
	}()

	h := api.New(compare.New(log), registry, log, tp.Tracer("orderscope"))
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: h.Router()}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.HTTPAddr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
	case <-ctx.Done():
		log.Info(context.Background(), "shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error(sctx, "http shutdown", "error", err)
		return err
	}
	log.Info(sctx, "bye")
	return nil
}
