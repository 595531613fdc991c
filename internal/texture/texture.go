/*
 * Copyright (C) 2023 by Jason Figge
 */

package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a texture backed by an RGBA bitmap. Sampling is nearest
// neighbour and wraps on both axes.
type Image struct {
	pix *image.RGBA
	w   int
	h   int
}

// FromImage copies src into a texture.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty texture image %dx%d", b.Dx(), b.Dy())
	}
	pix := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), src, b.Min, draw.Src)
	return &Image{pix: pix, w: b.Dx(), h: b.Dy()}, nil
}

// Open decodes an image file. PNG, JPEG, GIF, BMP, TIFF and WebP are
// understood.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return FromImage(src)
}

// Solid is a one pixel texture.
func Solid(c color.RGBA) *Image {
	pix := image.NewRGBA(image.Rect(0, 0, 1, 1))
	pix.SetRGBA(0, 0, c)
	return &Image{pix: pix, w: 1, h: 1}
}

func (t *Image) Size() (int, int) {
	return t.w, t.h
}

func wrap(f float64, n int) int {
	i := int(math.Floor(f*float64(n))) % n
	if i < 0 {
		i += n
	}
	return i
}

// Get samples the texel under (u, v).
func (t *Image) Get(u, v float64) color.RGBA {
	return t.pix.RGBAAt(wrap(u, t.w), wrap(v, t.h))
}
