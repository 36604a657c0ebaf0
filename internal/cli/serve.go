package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/numeral/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ServeOptions configures RunServe.
type ServeOptions struct {
	Options
	Port string // overrides the configured port when set
}

// RunServe starts the HTTP API and blocks until ctx is cancelled or the listener fails.
func RunServe(ctx context.Context, opts ServeOptions) error {
	cfg, logger, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	if opts.Port != "" {
		cfg.HTTP.Port = opts.Port
	}

	var (
		reg     *prometheus.Registry
		handler http.Handler
	)
	handlerOpts := []httpAdapter.HandlerOption{httpAdapter.WithLogger(logger)}
	if cfg.HTTP.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(reg))
	}

	var registerer prometheus.Registerer
	if reg != nil {
		registerer = reg
	}
	calc, closer, err := createCalculator(ctx, cfg, logger, registerer)
	if err != nil {
		return err
	}
	defer closer()

	handler = httpAdapter.NewHandler(calc, handlerOpts...)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("Starting numeral server", "addr", srv.Addr, "metrics", cfg.HTTP.Metrics, "cache", cfg.Cache.Backend)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown...", "signal", shutdownSignal(ctx))

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("numeral server stopped gracefully")
		return nil
	}
}
