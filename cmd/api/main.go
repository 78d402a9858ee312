package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fkhayef/splitledger/internal/app"
	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/logging"
	"github.com/fkhayef/splitledger/internal/server"
)

// @title        Split Ledger API
// @version      1.0
// @description  Shared-expense ledger: record who paid for what and get the transfers that settle every debt.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, logger); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Session: store selected by config, ledger loaded from the last snapshot
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	router := server.NewRouter(a.Session, logger, server.Options{
		Currency:       cfg.Display.Currency,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	return server.Run(ctx, ":"+cfg.Server.Port, router, logger)
}
