/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"ray-casting/internal/config"
	"ray-casting/internal/level"
	"ray-casting/internal/logging"
	"ray-casting/internal/metrics"
	"ray-casting/internal/render"
	"ray-casting/internal/texture"
)

// Scene ties a loaded map to a renderer configured from the config file.
type Scene struct {
	Config  *config.Config
	Map     *level.Map
	Render  *render.Render
	Metrics *metrics.Recorder
}

// Configure loads the configuration and applies its log level.
func Configure(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logging.SetLevel(lvl)
	return cfg, nil
}

// LoadMap reads a map, resolving its textures next to the map file.
func LoadMap(cfg *config.Config, path string) (*level.Map, error) {
	resolver := texture.NewResolver(filepath.Dir(path), cfg.Textures.NoiseSize)
	m, err := level.LoadFile(path, resolver.Load)
	if err != nil {
		return nil, err
	}
	h, w := m.Extents()
	logging.Debugf("loaded %s: %dx%d cells, spawn %s", path, w, h, m.Spawn)
	return m, nil
}

func NewScene(cfg *config.Config, mapPath string) (*Scene, error) {
	m, err := LoadMap(cfg, mapPath)
	if err != nil {
		return nil, err
	}

	s := &Scene{Config: cfg, Map: m}
	if cfg.Metrics.Textfile != "" {
		s.Metrics = metrics.NewRecorder()
	}

	s.Render, err = render.Spawn(m, render.Options{
		FOV:       cfg.Render.FOVDegrees * math.Pi / 180,
		EyeHeight: cfg.Render.EyeHeight,
		Workers:   cfg.Render.GetWorkers(),
		Metrics:   s.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place camera: %w", err)
	}
	return s, nil
}

// Draw renders the frame and exports metrics when configured.
func (s *Scene) Draw(ctx context.Context) error {
	start := time.Now()
	if err := s.Render.Render(ctx); err != nil {
		return err
	}
	b := s.Render.Frame().Bounds()
	logging.Infof("rendered %dx%d frame in %s", b.Dx(), b.Dy(), time.Since(start).Round(time.Microsecond))

	if s.Metrics != nil {
		if err := s.Metrics.WriteTextfile(s.Config.Metrics.Textfile); err != nil {
			return err
		}
		logging.Debugf("metrics written to %s", s.Config.Metrics.Textfile)
	}
	return nil
}

// Save encodes the frame to path. The extension picks the format, falling
// back to the configured one.
func (s *Scene) Save(path string) error {
	def, err := render.ParseFormat(s.Config.Output.Format)
	if err != nil {
		return err
	}
	format := render.FormatFor(path, def)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.Render.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if fi, err := os.Stat(path); err == nil {
		logging.Infof("wrote %s (%s, %s)", path, format, humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}
