package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/cardwall/wallpaper"
)

// config holds render defaults loaded from a YAML file. Every field is
// optional; unset fields keep the built-in defaults.
type config struct {
	Position       string   `yaml:"position"`
	CardWidth      *int     `yaml:"card_width"`
	CardOpacity    *float64 `yaml:"card_opacity"`
	DarkMode       *bool    `yaml:"dark_mode"`
	BlurBackground *bool    `yaml:"blur_background"`
	OutputDir      string   `yaml:"output_dir"`
}

// loadConfig reads a YAML config file and applies it over opts.
// Returns the configured output directory, if any.
func loadConfig(path string, opts *wallpaper.RenderOptions) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Position != "" {
		anchor, err := wallpaper.ParseAnchor(cfg.Position)
		if err != nil {
			return "", fmt.Errorf("config %s: %w", path, err)
		}
		opts.Anchor = anchor
	}
	if cfg.CardWidth != nil {
		opts.CardWidth = *cfg.CardWidth
	}
	if cfg.CardOpacity != nil {
		opts.CardOpacity = *cfg.CardOpacity
	}
	if cfg.DarkMode != nil {
		opts.DarkMode = *cfg.DarkMode
	}
	if cfg.BlurBackground != nil {
		opts.BlurBackground = *cfg.BlurBackground
	}

	return cfg.OutputDir, nil
}
