// Package config loads editor settings from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the tunable editor settings. Every field has a usable
// default so a bare environment just works.
type Config struct {
	FillColor    string  `envconfig:"FILL_COLOR" default:"#ffffff"`
	StrokeColor  string  `envconfig:"STROKE_COLOR" default:"#1a1a1a"`
	StrokeWidth  float64 `envconfig:"STROKE_WIDTH" default:"2"`
	ExportScale  float64 `envconfig:"EXPORT_SCALE" default:"1"`
	FontSize     float64 `envconfig:"FONT_SIZE" default:"13"`
	HistoryDepth int     `envconfig:"HISTORY_DEPTH" default:"50"`
	SnapToGrid   bool    `envconfig:"SNAP_TO_GRID" default:"true"`
	LogLevel     string  `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads VEX_-prefixed environment variables into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vex", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
