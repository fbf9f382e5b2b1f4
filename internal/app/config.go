package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"toruslife/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Tick     time.Duration
	Seed     int64
	Density  float64
	Paused   bool

	LogLevel  string
	LogFormat string

	// ConfigFile names an optional HCL settings file. Values in it apply
	// only to flags that were not given explicitly.
	ConfigFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     40,
		Height:    40,
		CellSize:  15,
		Tick:      core.DefaultTick,
		Density:   0.25,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board; 0 starts empty")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells when seeding")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional HCL settings file")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("board size %dx%d: dimensions must be at least 1", c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("cell size %d: must be at least 1", c.CellSize)
	case c.Tick <= 0:
		return fmt.Errorf("tick %v: must be positive", c.Tick)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %v: must be within [0, 1]", c.Density)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return nil
}
