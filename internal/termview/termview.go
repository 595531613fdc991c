/*
 * Copyright (C) 2023 by Jason Figge
 */

package termview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// UpperHalf draws the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const UpperHalf = '▀'

// Cell is one terminal cell covering two vertically stacked pixels.
type Cell struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// Sample scales img into cols x rows cells, each cell two pixels tall.
// Sampling is nearest neighbour at pixel centres.
func Sample(img *image.RGBA, cols, rows int) []Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	gridH := rows * 2

	cells := make([]Cell, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sx := b.Min.X + (x*srcW+srcW/2)/cols
			top := b.Min.Y + (2*y*srcH+srcH/2)/gridH
			bottom := b.Min.Y + ((2*y+1)*srcH+srcH/2)/gridH
			cells[y*cols+x] = Cell{
				Top:    img.RGBAAt(min(sx, b.Max.X-1), min(top, b.Max.Y-1)),
				Bottom: img.RGBAAt(min(sx, b.Max.X-1), min(bottom, b.Max.Y-1)),
			}
		}
	}
	return cells
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints the frame over the whole screen.
func Draw(screen tcell.Screen, img *image.RGBA) {
	cols, rows := screen.Size()
	cells := Sample(img, cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*cols+x]
			style := tcell.StyleDefault.Foreground(rgb(c.Top)).Background(rgb(c.Bottom))
			screen.SetContent(x, y, UpperHalf, nil, style)
		}
	}
	screen.Show()
}

// Show displays img in the terminal until a key is pressed, redrawing on
// resize.
func Show(img *image.RGBA) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Draw(screen, img)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, img)
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
