// Command life-text runs the board headlessly and prints it as text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"toruslife/internal/app"
	"toruslife/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 32, 16
	cfg.Seed = 42
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 50, "generations to simulate")
	every := flag.Int("every", 0, "also print the board every N generations; 0 prints only the last")
	flag.Parse()

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile, flag.CommandLine); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *steps < 0 {
		log.Fatalf("steps %d: must not be negative", *steps)
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	session := app.NewSession(cfg, logger)
	initial := session.Board().Alive()

	for i := 0; i < *steps; i++ {
		session.Step()
		if *every > 0 && session.Generation()%*every == 0 && session.Generation() != *steps {
			fmt.Printf("generation %d\n", session.Generation())
			if err := render.WriteText(os.Stdout, session.Board()); err != nil {
				log.Fatal(err)
			}
			fmt.Println()
		}
	}

	fmt.Printf("generation %d\n", session.Generation())
	if err := render.WriteText(os.Stdout, session.Board()); err != nil {
		log.Fatal(err)
	}
	logger.Info("Run finished.",
		"generations", session.Generation(),
		"initial_alive", initial,
		"final_alive", session.Board().Alive(),
	)
}
