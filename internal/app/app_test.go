/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"

	"ray-casting/internal/config"
	"ray-casting/internal/logging"
)

const room = `R 80 60
NO noise:1
SO noise:2
WE solid:90,90,120
EA solid:120,90,90
S solid:255,255,0
F 60,60,60
C 20,20,40

1111111
1000001
1020W01
1000001
1111111
`

func writeMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "room.cub")
	require.NoError(t, os.WriteFile(path, []byte(room), 0o644))
	return path
}

func TestScene(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Workers = 3
	cfg.Textures.NoiseSize = 16
	cfg.Metrics.Textfile = filepath.Join(t.TempDir(), "raycast.prom")

	s, err := NewScene(cfg, writeMap(t))
	require.NoError(t, err)
	require.NotNil(t, s.Metrics)
	require.NoError(t, s.Draw(context.Background()))

	prom, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "raycast_columns_total 80")

	out := filepath.Join(t.TempDir(), "frame.bmp")
	require.NoError(t, s.Save(out))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, format, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	assert.Equal(t, image.Rect(0, 0, 80, 60), img.Bounds())
}

func TestSceneErrors(t *testing.T) {
	cfg := config.Default()
	_, err := NewScene(cfg, filepath.Join(t.TempDir(), "absent.cub"))
	assert.Error(t, err)

	s, err := NewScene(cfg, writeMap(t))
	require.NoError(t, err)
	assert.Nil(t, s.Metrics)
	require.NoError(t, s.Draw(context.Background()))
	assert.Error(t, s.Save(filepath.Join(t.TempDir(), "missing", "frame.png")))

	s.Config.Output.Format = "gif"
	assert.Error(t, s.Save(filepath.Join(t.TempDir(), "frame.out")))
}

func TestConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycast.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))
	t.Cleanup(func() { logging.SetLevel(logging.INFO) })

	cfg, err := Configure(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logging.DEBUG, logging.Default().Level())

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: chatty\n"), 0o644))
	_, err = Configure(path)
	assert.Error(t, err)
}
