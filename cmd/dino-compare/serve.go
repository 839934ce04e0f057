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

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/dino-compare/internal/app"
	"github.com/aanand-mishra/dino-compare/internal/config"
	"github.com/aanand-mishra/dino-compare/internal/dataset"
	"github.com/aanand-mishra/dino-compare/internal/storage"
	"github.com/aanand-mishra/dino-compare/internal/storage/memory"
	"github.com/aanand-mishra/dino-compare/internal/storage/sqlite"
	"github.com/aanand-mishra/dino-compare/internal/types"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), config.Path(configPath))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration YAML file")
	return cmd
}

// serve runs the startup sequence:
//  1. Load configuration
//  2. Initialise the logger
//  3. Load the dataset (the only network/file read of the dataset)
//  4. Seed the catalog
//  5. Start the HTTP server in a separate goroutine
//  6. Block until SIGINT / SIGTERM, then shut down gracefully
func serve(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting dino-compare",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Load Dataset ───────────────────────────────────────────────────
	dinos, err := dataset.Load(ctx, cfg.DatasetPath)
	if err != nil {
		log.Error("failed to load dataset", slog.String("error", err.Error()))
		return err
	}
	log.Info("dataset loaded",
		slog.String("source", cfg.DatasetPath),
		slog.Int("dinosaurs", len(dinos)))

	// ── 4. Initialise Catalog ─────────────────────────────────────────────
	catalog, dinos, closeCatalog, err := openCatalog(cfg.StoragePath, dinos)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	defer closeCatalog()

	handler, err := app.New(dinos, catalog, app.Options{
		ImagesDir:  cfg.ImagesDir,
		Seed:       cfg.Seed,
		SessionTTL: cfg.SessionTTL,
	}, log)
	if err != nil {
		return err
	}

	// ── 5. Start the HTTP Server ──────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed after Shutdown; that
		// is the normal way out.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ── 6. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.Info("shutdown signal received, stopping server...")
	case err := <-serveErr:
		if err != nil {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// openCatalog seeds the catalog with dinos. With a storage path the
// records go through SQLite and are read back from it, so the page uses
// exactly what the catalog file holds.
func openCatalog(path string, dinos []types.Dinosaur) (storage.Catalog, []types.Dinosaur, func(), error) {
	if path == "" {
		m := memory.New()
		if err := m.ReplaceDinosaurs(dinos); err != nil {
			return nil, nil, nil, err
		}
		return m, dinos, func() {}, nil
	}

	db, err := sqlite.New(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.ReplaceDinosaurs(dinos); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("seed catalog: %w", err)
	}
	stored, err := db.GetDinosaurs()
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("read catalog: %w", err)
	}

	slog.Info("catalog seeded", slog.String("path", path), slog.Int("dinosaurs", len(stored)))
	return db, stored, func() { db.Close() }, nil
}
