package app

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 40, cfg.Width)
	require.Equal(t, 130*time.Millisecond, cfg.Tick)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":  func(c *Config) { c.Width = 0 },
		"zero height": func(c *Config) { c.Height = 0 },
		"zero cell":   func(c *Config) { c.CellSize = 0 },
		"zero tick":   func(c *Config) { c.Tick = 0 },
		"density":     func(c *Config) { c.Density = 1.5 },
		"log level":   func(c *Config) { c.LogLevel = "loud" },
		"log format":  func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFileAppliesSettings(t *testing.T) {
	path := writeHCL(t, `
width     = 60
height    = 24
cell_size = 10
tick      = "250ms"
seed      = 99
density   = 0.5
paused    = true

log {
  level  = "debug"
  format = "json"
}
`)
	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path, nil))
	require.Equal(t, 60, cfg.Width)
	require.Equal(t, 24, cfg.Height)
	require.Equal(t, 10, cfg.CellSize)
	require.Equal(t, 250*time.Millisecond, cfg.Tick)
	require.Equal(t, int64(99), cfg.Seed)
	require.InDelta(t, 0.5, cfg.Density, 1e-9)
	require.True(t, cfg.Paused)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestExplicitFlagsOverrideFile(t *testing.T) {
	path := writeHCL(t, "width = 60\nheight = 24\n")

	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-width", "12", "-config", path}))

	require.NoError(t, cfg.LoadFile(cfg.ConfigFile, fs))
	require.Equal(t, 12, cfg.Width, "explicit flag must win")
	require.Equal(t, 24, cfg.Height, "file fills unset flags")
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()

	err := cfg.LoadFile(writeHCL(t, "width = \n"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")

	err = cfg.LoadFile(writeHCL(t, "colour = \"red\"\n"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode")

	err = cfg.LoadFile(writeHCL(t, "tick = \"soon\"\n"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tick")

	require.Equal(t, 40, cfg.Width)
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("debug", "json", &buf).Debug("hello", "k", 1)
	require.True(t, strings.HasPrefix(buf.String(), "{"), "json handler expected, got %q", buf.String())

	buf.Reset()
	NewLogger("warn", "text", &buf).Info("dropped")
	require.Empty(t, buf.String())
}
