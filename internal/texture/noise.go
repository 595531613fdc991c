/*
 * Copyright (C) 2023 by Jason Figge
 */

package texture

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0 // smoothing
	noiseBeta    = 2.0 // frequency
	noiseOctaves = 3
	noiseScale   = 8.0 // noise periods across the texture
)

// Noise builds a size x size Perlin texture blending from dark to light.
// The same seed always gives the same texture.
func Noise(seed int64, size int, dark, light color.RGBA) *Image {
	if size < 1 {
		size = 1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	pix := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := p.Noise2D((float64(x)+0.5)/float64(size)*noiseScale, (float64(y)+0.5)/float64(size)*noiseScale)
			pix.SetRGBA(x, y, lerp(dark, light, (n+1)/2))
		}
	}
	return &Image{pix: pix, w: size, h: size}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
