// Package config loads the application settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"LocalSketch/internal/board"
	"LocalSketch/internal/surface"

	"github.com/pelletier/go-toml/v2"
)

const (
	ModeDesktop  = "desktop"
	ModeServe    = "serve"
	ModeDiscover = "discover"
)

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type Marker struct {
	Thin  float64  `toml:"thin"`
	Thick float64  `toml:"thick"`
	Color string   `toml:"color"`
	Inks  []string `toml:"inks"`
}

type Glyphs struct {
	Size    float64  `toml:"size"`
	Palette []string `toml:"palette"`
}

type Policy struct {
	KeepGlyphArmed bool `toml:"keep_glyph_armed"`
	DiscardOnLeave bool `toml:"discard_on_leave"`
}

type Export struct {
	Scale  float64 `toml:"scale"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
}

type Server struct {
	Addr      string `toml:"addr"`
	Advertise bool   `toml:"advertise"`
}

// Config is the full application configuration.
type Config struct {
	Mode    string `toml:"mode"`
	Verbose bool   `toml:"verbose"`
	Canvas  Canvas `toml:"canvas"`
	Marker  Marker `toml:"marker"`
	Glyphs  Glyphs `toml:"glyphs"`
	Policy  Policy `toml:"policy"`
	Export  Export `toml:"export"`
	Server  Server `toml:"server"`
}

func Default() Config {
	return Config{
		Mode: ModeDesktop,
		Canvas: Canvas{
			Width:      256,
			Height:     256,
			Background: "white",
		},
		Marker: Marker{
			Thin:  2,
			Thick: 8,
			Color: "black",
			Inks:  []string{"black", "#ff0000", "#00aa00", "#0000ff", "#ffcc00"},
		},
		Glyphs: Glyphs{
			Size:    32,
			Palette: []string{"♥", "♪", "☺"},
		},
		Export: Export{
			Scale:  4,
			Width:  1024,
			Height: 1024,
		},
		Server: Server{
			Addr: ":8888",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a session cannot work without.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModeDesktop, ModeServe, ModeDiscover:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Marker.Thin <= 0 || c.Marker.Thick <= 0 {
		errs = append(errs, errors.New("marker thickness must be positive"))
	}
	if c.Glyphs.Size <= 0 {
		errs = append(errs, errors.New("glyph size must be positive"))
	}
	for _, g := range c.Glyphs.Palette {
		if g == "" {
			errs = append(errs, errors.New("glyph palette contains an empty token"))
			continue
		}
		if !surface.CanRender(g) {
			errs = append(errs, fmt.Errorf("glyph %q has no outline in the label font", g))
		}
	}
	if c.Export.Scale <= 0 || c.Export.Width <= 0 || c.Export.Height <= 0 {
		errs = append(errs, errors.New("export scale and size must be positive"))
	}
	return errors.Join(errs...)
}

// SessionOptions maps the config onto the engine's options.
func (c Config) SessionOptions() board.Options {
	return board.Options{
		Tool:       board.Tool{Thickness: c.Marker.Thin, Color: c.Marker.Color},
		GlyphSize:  c.Glyphs.Size,
		Background: c.Canvas.Background,
		Verbose:    c.Verbose,
		Policy: board.Policy{
			KeepGlyphArmed: c.Policy.KeepGlyphArmed,
			DiscardOnLeave: c.Policy.DiscardOnLeave,
		},
	}
}
