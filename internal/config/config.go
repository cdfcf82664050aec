package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 50
	DefaultHeight   = 50
	DefaultCellSize = 12
	DefaultTPS      = 20
	DefaultDensity  = 0.5
	DefaultRule     = "B3/S23"
	DefaultRunGens  = 500
)

const (
	ToolkitRaylib = "raylib"
	ToolkitFyne   = "fyne"
	ToolkitEbiten = "ebiten"
)

type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Run     RunConfig     `yaml:"run"`
}

type BoardConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
	Rule    string  `yaml:"rule"`
	Pattern string  `yaml:"pattern"`
}

type DisplayConfig struct {
	CellSize   int    `yaml:"cell_size"`
	TPS        int    `yaml:"tps"`
	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
	GridColor  string `yaml:"grid_color"`
	Toolkit    string `yaml:"toolkit"`
	Theme      string `yaml:"theme"`
}

type RunConfig struct {
	Generations    int  `yaml:"generations"`
	StopWhenStable bool `yaml:"stop_when_stable"`
	Workers        int  `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Density: DefaultDensity,
			Rule:    DefaultRule,
		},
		Display: DisplayConfig{
			CellSize:   DefaultCellSize,
			TPS:        DefaultTPS,
			AliveColor: "#0000ff",
			DeadColor:  "#ffffff",
			GridColor:  "#808080",
			Toolkit:    ToolkitRaylib,
			Theme:      "classic",
		},
		Run: RunConfig{
			Generations:    DefaultRunGens,
			StopWhenStable: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Density < 0 || c.Board.Density > 1 {
		return fmt.Errorf("density must be in [0,1], got %f", c.Board.Density)
	}
	if _, err := life.ParseRule(c.Board.Rule); err != nil {
		return err
	}
	if c.Display.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.Display.CellSize)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Display.TPS)
	}
	switch c.Display.Toolkit {
	case ToolkitRaylib, ToolkitFyne, ToolkitEbiten:
	default:
		return fmt.Errorf("unknown toolkit: %s", c.Display.Toolkit)
	}
	for _, hex := range []string{c.Display.AliveColor, c.Display.DeadColor, c.Display.GridColor} {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	if c.Run.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Run.Generations)
	}
	return nil
}

// Rule returns the parsed board rule. Validate has already checked it.
func (c *Config) Rule() life.Rule {
	r, err := life.ParseRule(c.Board.Rule)
	if err != nil {
		return life.Conway
	}
	return r
}

// SimConfig returns the headless run settings. Generations falls back to the
// default when unset.
func (c *Config) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Rule = c.Rule()
	cfg.Seed = c.Board.Seed
	cfg.Workers = c.Run.Workers
	cfg.StopWhenStable = c.Run.StopWhenStable
	if c.Run.Generations > 0 {
		cfg.Generations = c.Run.Generations
	}
	return cfg
}

// Palette returns the alive, dead and grid colors.
func (c *Config) Palette() (alive, dead, grid color.RGBA) {
	alive, _ = ParseColor(c.Display.AliveColor)
	dead, _ = ParseColor(c.Display.DeadColor)
	grid, _ = ParseColor(c.Display.GridColor)
	return alive, dead, grid
}

// ParseColor reads "#rrggbb" or "#rgb".
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// BuildBoard creates the starting board: a random soup at Board.Density with
// Board.Pattern, if any, stamped in the center. A zero seed is replaced by a
// clock-derived one and written back so that the run can be reproduced.
func (c *Config) BuildBoard() (*life.Board, error) {
	if c.Board.Seed == 0 {
		c.Board.Seed = time.Now().UnixNano()
	}
	b, err := life.RandomBoard(c.Board.Width, c.Board.Height, c.Board.Seed, c.Board.Density)
	if err != nil {
		return nil, err
	}
	if c.Board.Pattern != "" {
		p, err := pattern.Lookup(c.Board.Pattern)
		if err != nil {
			return nil, err
		}
		if err := p.PlaceCenter(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}
