package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"fiscale/internal/platform/config"
	"fiscale/internal/platform/httpserver"
	"fiscale/internal/platform/logger"
	httptransport "fiscale/internal/transport/http"
	"fiscale/internal/verify/handler"
	verifymetrics "fiscale/internal/verify/metrics"
	"fiscale/internal/verify/service"
	"fiscale/internal/verify/tracer"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the codec and service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing fiscale",
		"addr", cfg.Addr,
		"metrics_addr", cfg.MetricsAddr,
	)

	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(verifymetrics.New()),
		service.WithTracer(tracer.NewOTel()),
	)

	h := handler.New(svc, log)
	router := httptransport.NewRouter(h, log, cfg.RequestTimeout)

	apiSrv := httpserver.New(cfg.Addr, router)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := httpserver.New(cfg.MetricsAddr, metricsMux)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("starting metrics server", "addr", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down servers gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		errs = append(errs, apiSrv.Shutdown(shutdownCtx))
		errs = append(errs, metricsSrv.Shutdown(shutdownCtx))
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
