// Package main is the entry point for The Green Chapel.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/config"
	"github.com/samdwyer/greenchapel/internal/game"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/telemetry"
	"github.com/samdwyer/greenchapel/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	telemetry.Disable()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.Telemetry.APIKey,
			Dataset: cfg.Telemetry.Dataset,
		})
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	reg, err := gamedata.LoadRegistry()
	if err != nil {
		logger.Error("content failed validation", zap.Error(err))
		log.Fatalf("Failed to load game content: %v", err)
	}
	logger.Info("content loaded",
		zap.Int("enemies", reg.EnemyCount()),
		zap.Int("items", reg.ItemCount()),
		zap.Int("encounters", reg.EncounterCount()),
	)

	g := game.New(reg, game.WithSeed(cfg.Seed), game.WithLogger(logger))

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	if err := ui.NewApp(screen, g, logger).Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Game error: %v", err)
	}
}
