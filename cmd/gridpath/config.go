package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig wraps every configuration validation failure.
var ErrBadConfig = errors.New("gridpath: invalid config")

// Config is the YAML file layout. Flags override the loaded values.
type Config struct {
	Markers    Markers      `yaml:"markers"`
	Costs      Costs        `yaml:"costs"`
	Render     RenderConfig `yaml:"render"`
	WithinGrid bool         `yaml:"within_grid"`
	LogLevel   string       `yaml:"log_level"`
}

// Markers are the single-character cell values the searches look for.
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Wall  string `yaml:"wall"`
}

// Costs are the per-direction step costs of the weighted search.
type Costs struct {
	Up    int `yaml:"up"`
	Down  int `yaml:"down"`
	Left  int `yaml:"left"`
	Right int `yaml:"right"`
}

// RenderConfig controls grid output.
type RenderConfig struct {
	Legend    *bool    `yaml:"legend"`
	CellWidth int      `yaml:"cell_width"`
	PathMark  string   `yaml:"path_mark"`
	Fill      []string `yaml:"fill"`
}

// DefaultConfig returns the configuration used when no file is given:
// markers S, E and #, unit costs, width-1 cells and info logging.
func DefaultConfig() Config {
	return Config{
		Markers:  Markers{Start: "S", End: "E", Wall: "#"},
		Costs:    Costs{Up: 1, Down: 1, Left: 1, Right: 1},
		Render:   RenderConfig{CellWidth: 1, PathMark: "o"},
		LogLevel: "info",
	}
}

// LoadConfig reads path over DefaultConfig. Keys missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	markers := []struct{ name, value string }{
		{"markers.start", c.Markers.Start},
		{"markers.end", c.Markers.End},
		{"markers.wall", c.Markers.Wall},
	}
	for _, m := range markers {
		if utf8.RuneCountInString(m.value) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrBadConfig, m.name, m.value)
		}
	}
	if c.Costs.Up < 0 || c.Costs.Down < 0 || c.Costs.Left < 0 || c.Costs.Right < 0 {
		return fmt.Errorf("%w: costs must not be negative", ErrBadConfig)
	}
	if c.Render.CellWidth < 1 {
		return fmt.Errorf("%w: render.cell_width must be at least 1", ErrBadConfig)
	}
	if c.Render.PathMark == "" {
		return fmt.Errorf("%w: render.path_mark must not be empty", ErrBadConfig)
	}
	for _, f := range c.Render.Fill {
		if utf8.RuneCountInString(f) != 1 {
			return fmt.Errorf("%w: render.fill entries must be single characters, got %q", ErrBadConfig, f)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (m Markers) start() rune { return firstRune(m.Start) }
func (m Markers) end() rune   { return firstRune(m.End) }
func (m Markers) wall() rune  { return firstRune(m.Wall) }

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrBadConfig, s)
	}
	return lvl, nil
}
