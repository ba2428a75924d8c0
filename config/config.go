// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the attributes of a sliding menu.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gioui.org/unit"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional configuration file.
const FileName = "sidemenu.yaml"

const (
	// DefaultMenuRightMargin is the strip of content left visible when
	// the menu is open.
	DefaultMenuRightMargin = unit.Dp(50)
	// DefaultShadowColor darkens the content while the menu is open.
	DefaultShadowColor = "#55000000"
	// DefaultSettleDuration is the length of open and close animations.
	DefaultSettleDuration = 250 * time.Millisecond
)

// Config holds the attributes of a sliding menu. Zero fields take their
// defaults.
type Config struct {
	MenuRightMargin  unit.Dp       `yaml:"menu_right_margin,omitempty"`
	ShadowColor      string        `yaml:"shadow_color,omitempty"`
	SettleDuration   time.Duration `yaml:"settle_duration,omitempty"`
	MinFlingVelocity unit.Dp       `yaml:"min_fling_velocity,omitempty"`
	MaxFlingVelocity unit.Dp       `yaml:"max_fling_velocity,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MenuRightMargin: DefaultMenuRightMargin,
		ShadowColor:     DefaultShadowColor,
		SettleDuration:  DefaultSettleDuration,
	}
}

// WithDefaults fills zero fields from Default.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.MenuRightMargin == 0 {
		c.MenuRightMargin = d.MenuRightMargin
	}
	if strings.TrimSpace(c.ShadowColor) == "" {
		c.ShadowColor = d.ShadowColor
	}
	if c.SettleDuration == 0 {
		c.SettleDuration = d.SettleDuration
	}
	return c
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	if c.MenuRightMargin < 0 {
		return fmt.Errorf("menu_right_margin must not be negative, got %v", c.MenuRightMargin)
	}
	if c.SettleDuration < 0 {
		return fmt.Errorf("settle_duration must not be negative, got %v", c.SettleDuration)
	}
	if c.MinFlingVelocity < 0 || c.MaxFlingVelocity < 0 {
		return errors.New("fling velocities must not be negative")
	}
	if c.MaxFlingVelocity != 0 && c.MaxFlingVelocity < c.MinFlingVelocity {
		return fmt.Errorf("max_fling_velocity %v is below min_fling_velocity %v", c.MaxFlingVelocity, c.MinFlingVelocity)
	}
	if c.ShadowColor != "" {
		if _, err := ParseColor(c.ShadowColor); err != nil {
			return err
		}
	}
	return nil
}

// Shadow returns the parsed shadow color.
func (c Config) Shadow() color.NRGBA {
	col, err := ParseColor(c.ShadowColor)
	if err != nil {
		col, _ = ParseColor(DefaultShadowColor)
	}
	return col
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadOptional reads sidemenu.yaml from dir if present, and returns the
// defaults otherwise.
func LoadOptional(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// ParseColor parses #RRGGBB or #AARRGGBB.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
