package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"LocalSketchpad/internal/state"
)

// Config describes how the sketchpad window and surface start up.
// Width and Height are the surface size in device pixels.
type Config struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Color       string `json:"color"`
	StrokeWidth int    `json:"stroke_width"`
	LogLevel    string `json:"log_level,omitempty"` // debug | info | warn | error

	// FitWindow makes the surface follow the window size instead of keeping
	// Width x Height; each resize starts a fresh, blank surface.
	FitWindow bool `json:"fit_window,omitempty"`
}

func Default() *Config {
	return &Config{
		Width:       800,
		Height:      600,
		Color:       state.DefaultHex,
		StrokeWidth: state.DefaultWidth,
		LogLevel:    "info",
	}
}

// Load reads a JSON config; fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects sizes and colors the surface cannot use. An out of range
// stroke width is clamped instead.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height))
	}
	if _, err := state.ParseHex(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	c.StrokeWidth = state.ClampWidth(c.StrokeWidth)
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Style builds the initial paint style.
func (c *Config) Style() (*state.Style, error) {
	s := state.NewStyle()
	if err := s.SetHexColor(c.Color); err != nil {
		return nil, err
	}
	s.SetWidth(c.StrokeWidth)
	return s, nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
