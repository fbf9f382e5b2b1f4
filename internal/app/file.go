package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileSettings mirrors Config for HCL decoding. Every attribute is optional;
// nil means the file did not set it. Unknown attributes are decode errors.
type fileSettings struct {
	Width    *int     `hcl:"width,optional"`
	Height   *int     `hcl:"height,optional"`
	CellSize *int     `hcl:"cell_size,optional"`
	Tick     *string  `hcl:"tick,optional"`
	Seed     *int64   `hcl:"seed,optional"`
	Density  *float64 `hcl:"density,optional"`
	Paused   *bool    `hcl:"paused,optional"`

	Log *logBlock `hcl:"log,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// LoadFile applies the settings in the HCL file at path. When fs is non-nil,
// settings whose flag was given explicitly on fs are left alone.
func (c *Config) LoadFile(path string, fs *flag.FlagSet) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var s fileSettings
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	set := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	apply := func(flagName string, fn func()) {
		if !set[flagName] {
			fn()
		}
	}

	if s.Width != nil {
		apply("width", func() { c.Width = *s.Width })
	}
	if s.Height != nil {
		apply("height", func() { c.Height = *s.Height })
	}
	if s.CellSize != nil {
		apply("cell", func() { c.CellSize = *s.CellSize })
	}
	if s.Tick != nil {
		d, err := time.ParseDuration(*s.Tick)
		if err != nil {
			return fmt.Errorf("HCL file %s: tick: %w", path, err)
		}
		apply("tick", func() { c.Tick = d })
	}
	if s.Seed != nil {
		apply("seed", func() { c.Seed = *s.Seed })
	}
	if s.Density != nil {
		apply("density", func() { c.Density = *s.Density })
	}
	if s.Paused != nil {
		apply("paused", func() { c.Paused = *s.Paused })
	}
	if s.Log != nil {
		if s.Log.Level != nil {
			apply("log-level", func() { c.LogLevel = *s.Log.Level })
		}
		if s.Log.Format != nil {
			apply("log-format", func() { c.LogFormat = *s.Log.Format })
		}
	}
	return nil
}
