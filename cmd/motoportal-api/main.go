// main is the entry point of the motorcycle portal API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the database (SQLite or MySQL) and seed it when empty
//  4. Build the hours evaluator and the status board
//  5. Register all HTTP routes
//  6. Run the HTTP server and the board refresher side by side
//  7. On Ctrl+C / SIGTERM: finish in-flight requests, stop the board, exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/motoportal-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/motoportal-api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	// Embedded zoneinfo: the configured timezone resolves even on hosts
	// without /usr/share/zoneinfo (scratch and distroless images).
	_ "time/tzdata"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/http/router"
	"github.com/aanand-mishra/motoportal-api/internal/logger"
	"github.com/aanand-mishra/motoportal-api/internal/seed"
	"github.com/aanand-mishra/motoportal-api/internal/status"
	"github.com/aanand-mishra/motoportal-api/internal/storage/driver"
	"github.com/aanand-mishra/motoportal-api/internal/validation"
)

// version is stamped at build time:
//
//	go build -ldflags "-X main.version=$(git describe --tags)" ./cmd/motoportal-api
var version = "dev"

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad exits the process when the config is missing or invalid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := logger.New(cfg.Env, os.Stdout)
	// Handlers log through the package-level slog functions.
	slog.SetDefault(log)

	logStartup(log, cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("motoportal-api stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

func logStartup(log *slog.Logger, env string) {
	log.Info("starting motoportal-api",
		slog.String("env", env),
		slog.String("version", version),
	)
}

func run(cfg *config.Config, log *slog.Logger) error {
	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// The rest of the program only sees storage.Storage, so switching
	// between SQLite and MySQL is a config change.
	store, err := driver.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Info("storage initialised", slog.String("driver", cfg.StorageDriver))

	validate := validation.New()

	if cfg.SeedPath != "" {
		res, imported, err := seed.IfEmpty(store, cfg.SeedPath, validate)
		if err != nil {
			return err
		}
		if imported {
			log.Info("store seeded",
				slog.String("path", cfg.SeedPath),
				slog.Int("listings", res.Listings),
				slog.Int("events", res.Events),
				slog.Int("classifieds", res.Classifieds),
			)
		}
	}

	// ── 4. Hours Evaluator and Status Board ───────────────────────────────
	evaluator, err := hours.FromConfig(cfg.Hours, nil)
	if err != nil {
		return err
	}
	board := status.NewBoard(store, evaluator, log)

	// ── 5. Register HTTP Routes ───────────────────────────────────────────
	handler := router.New(router.Deps{
		Storage:   store,
		Evaluator: evaluator,
		Board:     board,
		Validate:  validate,
		Log:       log,
	})

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	// ── 6. Run Server and Board ───────────────────────────────────────────
	// ctx is cancelled on Ctrl+C (SIGINT) or SIGTERM, or when either
	// goroutine below fails.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))
		// ListenAndServe returns http.ErrServerClosed after Shutdown.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return board.Run(ctx, cfg.Hours.RefreshInterval)
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
