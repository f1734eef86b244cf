package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/diewo77/invoice-lite/internal/config"
	"github.com/diewo77/invoice-lite/internal/server"
	"github.com/diewo77/invoice-lite/internal/storage"
	"github.com/diewo77/invoice-lite/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "invoicelite",
		Usage: "single-user invoice manager",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: runServe,
			},
			{
				Name:   "reset",
				Usage:  "wipe all invoices and settings",
				Action: runReset,
			},
		},
		DefaultCommand: "serve",
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("invoicelite failed")
	}
}

func setup() (config.Config, *store.Store, error) {
	_ = godotenv.Load()
	cfg := config.Load()

	// Pretty console output in development, JSON otherwise.
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	adapter, err := storage.Open(cfg.DatabaseDSN)
	if err != nil {
		return cfg, nil, err
	}
	st := store.New(adapter)
	if err := st.Reload(); err != nil {
		return cfg, nil, err
	}
	return cfg, st, nil
}

func runServe(_ *cli.Context) error {
	cfg, st, err := setup()
	if err != nil {
		return err
	}
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting server")

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(st)}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
	return nil
}

func runReset(_ *cli.Context) error {
	_, st, err := setup()
	if err != nil {
		return err
	}
	if err := st.Reset(); err != nil {
		return err
	}
	log.Info().Msg("all data wiped; defaults will repopulate")
	return nil
}
