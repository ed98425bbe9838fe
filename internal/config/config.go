package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalid = errors.New("invalid config")

// Config holds user preferences for the canvas. Zero values mean "use the
// default"; see Resolved.
type Config struct {
	// CellWidth is the number of terminal columns per day.
	CellWidth int `json:"cellWidth,omitempty"`
	// RowHeight is the number of terminal lines per lane.
	RowHeight int `json:"rowHeight,omitempty"`

	// Rows and Days size the initial window.
	Rows int `json:"rows,omitempty"`
	Days int `json:"days,omitempty"`

	// ExtendThreshold is the gap (in days) to the window end at which the
	// window grows. Nil means the default of one day; zero is allowed.
	ExtendThreshold *int `json:"extendThreshold,omitempty"`
	// Growth is "overflow" (grow just enough) or "fixed" (one day at a time).
	Growth string `json:"growth,omitempty"`

	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// DoubleClickMs is the maximum gap between two presses of a double click.
	DoubleClickMs int `json:"doubleClickMs,omitempty"`

	// Colors is the palette new epics cycle through.
	Colors []string `json:"colors,omitempty"`
}

const (
	DefaultCellWidth     = 6
	DefaultRowHeight     = 2
	DefaultRows          = 3
	DefaultDays          = 30
	DefaultThreshold     = 1
	DefaultGrowth        = "overflow"
	DefaultGlyphs        = "unicode"
	DefaultDoubleClickMs = 400

	// MinCellWidth is the narrowest day that still has a start tip, a start
	// handle, a body cell, an end handle and an end tip.
	MinCellWidth = 5
)

var DefaultColors = []string{"#7ed6df", "#e056fd", "#f9ca24", "#6ab04c", "#eb4d4b"}

func Default() Config {
	return Config{}.Resolved()
}

// Resolved fills in defaults for every unset field.
func (c Config) Resolved() Config {
	if c.CellWidth <= 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.RowHeight <= 0 {
		c.RowHeight = DefaultRowHeight
	}
	if c.Rows <= 0 {
		c.Rows = DefaultRows
	}
	if c.Days <= 0 {
		c.Days = DefaultDays
	}
	if c.ExtendThreshold == nil {
		v := DefaultThreshold
		c.ExtendThreshold = &v
	}
	if strings.TrimSpace(c.Growth) == "" {
		c.Growth = DefaultGrowth
	}
	if strings.TrimSpace(c.Glyphs) == "" {
		c.Glyphs = DefaultGlyphs
	}
	if c.DoubleClickMs <= 0 {
		c.DoubleClickMs = DefaultDoubleClickMs
	}
	if len(c.Colors) == 0 {
		c.Colors = append([]string(nil), DefaultColors...)
	}
	return c
}

// Validate checks a resolved config.
func (c Config) Validate() error {
	if c.CellWidth < MinCellWidth {
		return fmt.Errorf("%w: cellWidth must be at least %d (got %d)", ErrInvalid, MinCellWidth, c.CellWidth)
	}
	if c.ExtendThreshold != nil && *c.ExtendThreshold < 0 {
		return fmt.Errorf("%w: extendThreshold must not be negative", ErrInvalid)
	}
	switch c.Growth {
	case "overflow", "fixed":
	default:
		return fmt.Errorf("%w: growth must be overflow or fixed (got %q)", ErrInvalid, c.Growth)
	}
	switch c.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("%w: glyphs must be unicode or ascii (got %q)", ErrInvalid, c.Glyphs)
	}
	return nil
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.epiccanvas).
	if v := strings.TrimSpace(os.Getenv("EPICCANVAS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".epiccanvas"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o644)
}
