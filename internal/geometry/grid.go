/*
 * Copyright (C) 2023 by Jason Figge
 */

package geometry

// Grid describes the cell bounds a ray is cast over.
type Grid struct {
	Height int
	Width  int
}

func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}
