/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": PNG, ".PNG": PNG, "bmp": BMP, "tif": TIFF, ".tiff": TIFF} {
		f, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, f, in)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)

	assert.Equal(t, BMP, FormatFor("out/frame.bmp", PNG))
	assert.Equal(t, PNG, FormatFor("out/frame", PNG))
	assert.Equal(t, TIFF, FormatFor("frame.jpeg", TIFF))
}

func TestEncodeRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 0xff})

	for _, f := range []Format{PNG, BMP, TIFF} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, img, f), f)

		decoded, name, err := image.Decode(&buf)
		require.NoError(t, err, f)
		assert.Equal(t, string(f), name)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
		r, g, b, _ := decoded.At(2, 1).RGBA()
		assert.Equal(t, []uint32{200, 100, 50}, []uint32{r >> 8, g >> 8, b >> 8}, f)
	}

	assert.Error(t, Encode(&bytes.Buffer{}, img, Format("gif")))
}
