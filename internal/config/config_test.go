/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Render.FOVDegrees)
	assert.Equal(t, 0.6, cfg.Render.EyeHeight)
	assert.Equal(t, "png", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 64, cfg.Textures.NoiseSize)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.NoError(t, cfg.Validate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("render:\n  workers: 4\nmetrics:\n  textfile: /tmp/raycast.prom\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Render.Workers)
	assert.Equal(t, 30.0, cfg.Render.FOVDegrees, "unset keys keep their default")
	assert.Equal(t, "/tmp/raycast.prom", cfg.Metrics.Textfile)
}

func TestParseRejects(t *testing.T) {
	for _, src := range []string{
		"render:\n  fov_degrees: 95\n",
		"render:\n  eye_height: 1.5\n",
		"render:\n  workers: -2\n",
		"render: [\n",
	} {
		_, err := Parse([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycast.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: bmp\n"), 0o644))
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bmp", cfg.Output.Format)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestGetWorkers(t *testing.T) {
	r := RenderConfig{Workers: 3}
	t.Setenv(EnvWorkers, "")
	assert.Equal(t, 3, r.GetWorkers())

	t.Setenv(EnvWorkers, "8")
	assert.Equal(t, 8, r.GetWorkers())

	t.Setenv(EnvWorkers, "zero")
	assert.Equal(t, 3, r.GetWorkers())

	r.Workers = 0
	assert.Equal(t, 1, r.GetWorkers())
}
