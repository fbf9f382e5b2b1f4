//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"toruslife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile, flag.CommandLine); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	session := app.NewSession(cfg, logger)
	game := app.New(session)

	ebiten.SetWindowTitle("Game of life")
	ebiten.SetWindowSize(game.WindowSize())

	logger.Info("Starting.", "width", cfg.Width, "height", cfg.Height, "tick", cfg.Tick)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
