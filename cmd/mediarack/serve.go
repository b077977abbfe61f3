package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mesh-intelligence/mediarack/internal/httpapi"
	"github.com/mesh-intelligence/mediarack/internal/sqlite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mediarack HTTP server",
	Long: `Start the HTTP server. On first run against an empty database the
store is seeded with sample records; restarts never re-seed.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, traced, err := initTracing(ctx)
	if err != nil {
		return err
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(c)
	}()

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return err
	}
	defer store.Close()

	seeded, err := store.Seed(ctx, cfg.SeedCount)
	if err != nil {
		return err
	}
	if seeded > 0 {
		log.Printf("seeded %d sample records", seeded)
	}

	h := httpapi.NewHandler(store, log.Default())
	var handler http.Handler = httpapi.RequestID(h.Routes())
	if traced {
		handler = otelhttp.NewHandler(handler, "mediarack.http")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("mediarack listening on %s", cfg.ListenAddr)

	select {
	case <-ctx.Done():
		log.Println("shutting down")
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(c)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
