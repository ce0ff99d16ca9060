// Package main is the entry point for creaturebattle.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/creaturebattle/internal/game"
	"github.com/samdwyer/creaturebattle/internal/telemetry"
	"github.com/samdwyer/creaturebattle/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		telemetry.ConfigureEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	// run returns before log.Fatalf so the terminal is restored first
	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg game.Config) error {
	data, err := game.LoadData(cfg)
	if err != nil {
		return fmt.Errorf("failed to load creature data: %w", err)
	}

	var menu game.Menu
	if cfg.Plain {
		menu = ui.NewConsoleMenu(os.Stdin, os.Stdout)
	} else {
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize screen: %w", err)
		}
		defer screen.Close()
		menu = ui.NewTerminalMenu(screen, data.Palette())
	}

	g, err := game.NewFromData(cfg, data, menu)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		g.SetLogger(log.New(f, "creaturebattle ", log.LstdFlags))
	}

	return g.Run(ctx)
}
