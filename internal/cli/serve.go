package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/solstice"
	httpAdapter "github.com/aretw0/solstice/internal/adapters/http"
	"github.com/aretw0/solstice/pkg/adapters/loam"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/observability"
	"github.com/aretw0/solstice/pkg/ports"
	"github.com/aretw0/solstice/pkg/session"
)

// ServeOptions configures the HTTP server command.
type ServeOptions struct {
	Addr          string
	StoreKind     string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CatalogDir    string
	Metrics       bool
	Debug         bool
}

// RunServe starts the HTTP API and blocks until the context is cancelled or
// the listener fails. Shutdown is graceful with a five second deadline.
func RunServe(ctx context.Context, opts ServeOptions) error {
	logger := serverLogger(opts.Debug)

	store, sessionOpts, err := createStore(opts, logger)
	if err != nil {
		return err
	}
	sessionOpts = append(sessionOpts, session.WithLogger(logger))
	archive := session.NewManager(store, sessionOpts...)

	var catalog ports.PuzzleCatalog
	if opts.CatalogDir != "" {
		c, err := loam.Open(opts.CatalogDir)
		if err != nil {
			return fmt.Errorf("error opening catalog: %w", err)
		}
		catalog = c
		logger.Info("catalog mounted", "dir", opts.CatalogDir)
	}

	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	var metrics *httpAdapter.Metrics
	if opts.Metrics {
		metrics = httpAdapter.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
	}

	solver := solstice.New(
		solstice.WithLogger(logger),
		solstice.WithLifecycleHooks(observability.Combine(hooks...)),
	)

	handler := httpAdapter.NewHandler(httpAdapter.Config{
		Solver:  solver,
		Archive: archive,
		Catalog: catalog,
		Metrics: metrics,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:    opts.Addr,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", "addr", opts.Addr, "store", storeName(opts.StoreKind))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				logger.Error("server close failed", "err", closeErr)
			}
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		logger.Info("HTTP server stopped gracefully")
		return nil
	}
}

func storeName(kind string) string {
	if kind == "" {
		return "memory"
	}
	return kind
}
