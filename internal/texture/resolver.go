/*
 * Copyright (C) 2023 by Jason Figge
 */

package texture

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"ray-casting/internal/level"
)

const DefaultNoiseSize = 64

var (
	noiseDark  = color.RGBA{R: 0x30, G: 0x2a, B: 0x24, A: 0xff}
	noiseLight = color.RGBA{R: 0xb8, G: 0xa8, B: 0x90, A: 0xff}
)

// Resolver turns map texture references into textures. A reference is one of
//
//	noise:<seed>   a procedural Perlin texture
//	solid:r,g,b    a flat colour
//	<path>         an image file, relative to Dir unless absolute
type Resolver struct {
	Dir       string
	NoiseSize int
}

func NewResolver(dir string, noiseSize int) *Resolver {
	if noiseSize <= 0 {
		noiseSize = DefaultNoiseSize
	}
	return &Resolver{Dir: dir, NoiseSize: noiseSize}
}

func (r *Resolver) Load(ref string) (level.Texture, error) {
	switch {
	case strings.HasPrefix(ref, "noise:"):
		seed, err := strconv.ParseInt(strings.TrimPrefix(ref, "noise:"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad noise seed in %q: %w", ref, err)
		}
		return Noise(seed, r.NoiseSize, noiseDark, noiseLight), nil
	case strings.HasPrefix(ref, "solid:"):
		c, err := level.ParseRGB(strings.TrimPrefix(ref, "solid:"))
		if err != nil {
			return nil, err
		}
		return Solid(c), nil
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.Dir, path)
	}
	return Open(path)
}
