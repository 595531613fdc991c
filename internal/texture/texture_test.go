/*
 * Copyright (C) 2023 by Jason Figge
 */

package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// checker is 2x2: red green / blue white.
func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, green)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, white)
	return img
}

func TestGetWraps(t *testing.T) {
	tex, err := FromImage(checker())
	require.NoError(t, err)

	assert.Equal(t, red, tex.Get(0, 0))
	assert.Equal(t, green, tex.Get(0.5, 0))
	assert.Equal(t, blue, tex.Get(0.49, 0.5))
	assert.Equal(t, white, tex.Get(0.99, 0.99))
	assert.Equal(t, red, tex.Get(1, 1), "coordinates wrap at 1")
	assert.Equal(t, green, tex.Get(1.6, 2.2))
	assert.Equal(t, white, tex.Get(-0.25, -0.25), "negative coordinates wrap")
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := checker().SubImage(image.Rect(1, 1, 2, 2))
	tex, err := FromImage(src)
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, white, tex.Get(0.3, 0.7))

	_, err = FromImage(image.NewRGBA(image.Rect(0, 0, 0, 4)))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "wall.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, checker()))
	require.NoError(t, f.Close())

	bmpPath := filepath.Join(dir, "wall.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, checker()))
	require.NoError(t, f.Close())

	for _, p := range []string{pngPath, bmpPath} {
		tex, err := Open(p)
		require.NoError(t, err, p)
		assert.Equal(t, green, tex.Get(0.75, 0.25), p)
	}

	_, err = Open(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = Open(junk)
	assert.Error(t, err)
}

func TestSolid(t *testing.T) {
	tex := Solid(blue)
	assert.Equal(t, blue, tex.Get(0.3, 12.7))
}

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(7, 16, noiseDark, noiseLight)
	b := Noise(7, 16, noiseDark, noiseLight)
	assert.Equal(t, a.pix.Pix, b.pix.Pix)

	varied := false
	first := a.Get(0, 0)
	for y := 0; y < 16 && !varied; y++ {
		for x := 0; x < 16; x++ {
			if a.pix.RGBAAt(x, y) != first {
				varied = true
				break
			}
		}
	}
	assert.True(t, varied)
	assert.Equal(t, uint8(0xff), first.A)
}

func TestLerpClamps(t *testing.T) {
	assert.Equal(t, red, lerp(red, blue, -1))
	assert.Equal(t, blue, lerp(red, blue, 2))
}

func TestResolver(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "brick.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, checker()))
	require.NoError(t, f.Close())

	r := NewResolver(dir, 0)
	assert.Equal(t, DefaultNoiseSize, r.NoiseSize)

	tex, err := r.Load("brick.png")
	require.NoError(t, err)
	assert.Equal(t, red, tex.Get(0, 0))

	tex, err = r.Load("solid:1,2,3")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, tex.Get(0.5, 0.5))

	tex, err = r.Load("noise:42")
	require.NoError(t, err)
	w, h := tex.(*Image).Size()
	assert.Equal(t, DefaultNoiseSize, w)
	assert.Equal(t, DefaultNoiseSize, h)

	_, err = r.Load("noise:abc")
	assert.Error(t, err)
	_, err = r.Load("solid:1,2")
	assert.Error(t, err)
	_, err = r.Load("nope.png")
	assert.Error(t, err)
}
