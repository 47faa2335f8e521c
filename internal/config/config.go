// Package config loads paintd settings from PAINT_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. PAINT_PORT.
const Prefix = "paint"

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	Width          int    `envconfig:"WIDTH" default:"800"`
	Height         int    `envconfig:"HEIGHT" default:"600"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"localhost:*,127.0.0.1:*"`
	Backend        string `envconfig:"BACKEND" default:"raster"`
	QueueSize      int    `envconfig:"QUEUE_SIZE" default:"64"`
	PixelCache     bool   `envconfig:"PIXEL_CACHE" default:"true"`
	SnapshotCache  int    `envconfig:"SNAPSHOT_CACHE" default:"4"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.Port < 0 || c.Port > 65535:
		return fmt.Errorf("config: port %d out of range", c.Port)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: invalid canvas size %dx%d", c.Width, c.Height)
	case c.QueueSize < 0:
		return fmt.Errorf("config: negative queue size %d", c.QueueSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return l, nil
}

// Origins splits AllowedOrigins into websocket origin patterns.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
