// main is the entry point of the People API.
//
// Startup sequence:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the storage driver (flat JSON files or SQLite)
//  4. Seed the default accounts if the account collection is empty
//  5. Build the router and start the HTTP server in a goroutine
//  6. Block until an OS signal arrives, then shut down gracefully
//
// Running the server:
//
//	go run ./cmd/people-api --config=config/local.yaml
//
// or, with the environment variable:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/people-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/people-api/internal/auth"
	"github.com/aanand-mishra/people-api/internal/config"
	"github.com/aanand-mishra/people-api/internal/http/router"
	"github.com/aanand-mishra/people-api/internal/people"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/storage/jsonfile"
	"github.com/aanand-mishra/people-api/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting people-api",
		slog.String("env", cfg.Env),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.Bool("auth_required", cfg.AuthRequired),
	)

	// The rest of the code only sees the storage.Storage interface, so
	// the driver choice stays a one-line concern.
	var (
		store storage.Storage
		err   error
	)
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err = sqlite.New(cfg.StoragePath)
	default:
		store, err = jsonfile.New(cfg.DataDir)
	}
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed admin/viewer accounts on a fresh installation; a no-op when
	// any account already exists.
	if err := auth.EnsureDefaultAccounts(store); err != nil {
		log.Error("failed to bootstrap accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := people.NewService(store)
	authn := auth.NewAuthenticator(store)

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router.New(cfg, svc, authn, log),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// Finish in-flight requests, but no longer than five seconds.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a slog.Logger configured for the environment:
// human-readable text at DEBUG in dev, JSON elsewhere (DEBUG in staging,
// INFO in prod).
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
