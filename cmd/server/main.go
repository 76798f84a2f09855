package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/api"
	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/config"
	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the document store. The client honors
	// FIRESTORE_EMULATOR_HOST for local development.
	fs, err := firestore.NewClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		log.Error("firestore client", "error", err)
		os.Exit(1)
	}
	quotes := store.New(fs, cfg.FirestoreCollection)

	// Initialize HTTP server.
	srv := api.NewServer(quotes, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		quotes.Close()
	}()

	log.Info("starting preventivo-pro", "port", cfg.Port, "collection", cfg.FirestoreCollection)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
