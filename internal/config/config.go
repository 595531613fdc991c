/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfig  = "RAYCAST_CONFIG"
	EnvWorkers = "RAYCAST_WORKERS"
)

// Config is the root of the YAML configuration.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Textures TexturesConfig `yaml:"textures"`
}

type RenderConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	EyeHeight  float64 `yaml:"eye_height"`
	Workers    int     `yaml:"workers"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type MetricsConfig struct {
	// Textfile is where render metrics are written in the Prometheus text
	// format. Empty disables the export.
	Textfile string `yaml:"textfile"`
}

type TexturesConfig struct {
	NoiseSize int `yaml:"noise_size"`
}

func Default() *Config {
	return &Config{
		Render: RenderConfig{
			FOVDegrees: 30,
			EyeHeight:  0.6,
			Workers:    1,
		},
		Output:   OutputConfig{Format: "png"},
		Log:      LogConfig{Level: "info"},
		Textures: TexturesConfig{NoiseSize: 64},
	}
}

// GetWorkers returns the worker count with priority env -> config -> 1.
func (r *RenderConfig) GetWorkers() int {
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if r.Workers > 0 {
		return r.Workers
	}
	return 1
}

func (c *Config) Validate() error {
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 90 {
		return fmt.Errorf("render.fov_degrees must be in (0, 90), got %g", c.Render.FOVDegrees)
	}
	if c.Render.EyeHeight <= 0 || c.Render.EyeHeight >= 1 {
		return fmt.Errorf("render.eye_height must be in (0, 1), got %g", c.Render.EyeHeight)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	return nil
}

// Parse reads YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML config file. With an empty path it falls back to
// $RAYCAST_CONFIG, and to the defaults when that is unset too.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
