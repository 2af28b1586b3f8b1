// Package config gathers run settings from flags, QLIFE_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"qlife/internal/core"
	"qlife/internal/patterns"
	"qlife/internal/sim"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to flag names to form environment keys.
const EnvPrefix = "QLIFE"

// Front ends selectable with --ui.
const (
	UIGUI      = "gui"
	UITerm     = "term"
	UIHeadless = "headless"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Mode         string
	Pattern      string
	Row          int
	Col          int
	Rows         int
	Cols         int
	CellSize     int
	Tick         time.Duration
	Edge         string
	Density      float64
	Seed         int64
	PatternsFile string
	UI           string
	Steps        int
	Collapse     bool
	LogLevel     string
	LogPretty    bool
	ListPatterns bool
}

// NewConfig returns a Config populated with defaults matching a 100x70
// board drawn at 8px per cell and ten generations per second.
func NewConfig() *Config {
	return &Config{
		Mode:     "classical",
		Pattern:  "glider",
		Row:      1,
		Col:      1,
		Rows:     70,
		Cols:     100,
		CellSize: 8,
		Tick:     100 * time.Millisecond,
		Edge:     "bounded",
		Density:  sim.DefaultDensity,
		Seed:     42,
		UI:       UIHeadless,
		Steps:    50,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Mode, "mode", "m", c.Mode, "rule model: classical|quantum (c|q)")
	fs.StringVarP(&c.Pattern, "pattern", "p", c.Pattern, "pattern to seed, or \"random\"")
	fs.IntVar(&c.Row, "row", c.Row, "top row of the seeded pattern")
	fs.IntVar(&c.Col, "col", c.Col, "left column of the seeded pattern")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "interval between generations")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy: bounded|toroidal")
	fs.Float64Var(&c.Density, "density", c.Density, "live share for the random pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern and observation")
	fs.StringVar(&c.PatternsFile, "patterns", c.PatternsFile, "extra TOML pattern catalogue")
	fs.StringVar(&c.UI, "ui", c.UI, "front end: gui|term|headless")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run headless (0 = until interrupted)")
	fs.BoolVar(&c.Collapse, "collapse", c.Collapse, "print a sampled classical board after a quantum headless run")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug|info|warn|error")
	fs.BoolVar(&c.LogPretty, "log-pretty", c.LogPretty, "human-readable log output")
	fs.BoolVar(&c.ListPatterns, "list-patterns", c.ListPatterns, "print the available patterns and exit")
}

// Load parses args into a Config. A .env file in the working directory is
// read first; QLIFE_* variables override defaults and explicit flags
// override both.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	_ = godotenv.Load()

	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	c.Mode = v.GetString("mode")
	c.Pattern = v.GetString("pattern")
	c.Row = v.GetInt("row")
	c.Col = v.GetInt("col")
	c.Rows = v.GetInt("rows")
	c.Cols = v.GetInt("cols")
	c.CellSize = v.GetInt("cell-size")
	c.Tick = v.GetDuration("tick")
	c.Edge = v.GetString("edge")
	c.Density = v.GetFloat64("density")
	c.Seed = v.GetInt64("seed")
	c.PatternsFile = v.GetString("patterns")
	c.UI = strings.ToLower(v.GetString("ui"))
	c.Steps = v.GetInt("steps")
	c.Collapse = v.GetBool("collapse")
	c.LogLevel = v.GetString("log-level")
	c.LogPretty = v.GetBool("log-pretty")
	c.ListPatterns = v.GetBool("list-patterns")
	return c, nil
}

// Validate checks ranges and enumerations. A bad mode is reported as
// both ErrInvalidConfig and sim.ErrInvalidMode.
func (c *Config) Validate() error {
	if _, err := sim.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := core.ParseEdgePolicy(c.Edge); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, c.Tick)
	case c.Density <= 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be in (0, 1], got %v", ErrInvalidConfig, c.Density)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalidConfig, c.Steps)
	}
	switch c.UI {
	case UIGUI, UITerm, UIHeadless:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalidConfig, c.UI)
	}
	return nil
}

// Library returns the default patterns merged with PatternsFile, if set.
func (c *Config) Library() (*patterns.Library, error) {
	lib := patterns.Default()
	if c.PatternsFile == "" {
		return lib, nil
	}
	extra, err := patterns.LoadFile(c.PatternsFile)
	if err != nil {
		return nil, err
	}
	lib.Merge(extra)
	return lib, nil
}

// Session converts the validated settings into a sim.Config.
func (c *Config) Session(lib *patterns.Library, log *zerolog.Logger) (sim.Config, error) {
	if err := c.Validate(); err != nil {
		return sim.Config{}, err
	}
	mode, _ := sim.ParseMode(c.Mode)
	edge, _ := core.ParseEdgePolicy(c.Edge)
	return sim.Config{
		Mode:     mode,
		Size:     core.Size{Rows: c.Rows, Cols: c.Cols},
		Edge:     edge,
		CellSize: c.CellSize,
		Seed: sim.Seed{
			Pattern: c.Pattern,
			Row:     c.Row,
			Col:     c.Col,
			Density: c.Density,
			Seed:    c.Seed,
		},
		Library: lib,
		Logger:  log,
	}, nil
}
