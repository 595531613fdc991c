/*
 * Copyright (C) 2023 by Jason Figge
 */

package level

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"ray-casting/internal/geometry"
)

type Cell uint8

const (
	Space Cell = iota
	Wall
	Item
)

func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Item:
		return '*'
	default:
		return '.'
	}
}

// Texture is anything that yields a colour for wrapped (u, v) coordinates.
type Texture interface {
	Get(u, v float64) color.RGBA
}

type Resolution struct {
	Width  int
	Height int
}

type Spawn struct {
	X         int
	Y         int
	Direction geometry.Direction
}

func (s Spawn) String() string {
	return fmt.Sprintf("{direction: %s, x: %d, y: %d}", s.Direction, s.X, s.Y)
}

// Map is a validated level: a rectangular cell grid, the camera spawn and
// everything needed to shade a frame.
type Map struct {
	Resolution Resolution
	Textures   [4]Texture // indexed by geometry.Direction
	Sprite     Texture
	Floor      color.RGBA
	Ceiling    color.RGBA
	Cells      [][]Cell // [y][x]
	Spawn      Spawn
}

var (
	ErrNotEnclosed   = errors.New("map is not enclosed by walls")
	ErrBadSpawn      = errors.New("spawn is not on an open cell")
	ErrEmptyMap      = errors.New("map has no rows")
	ErrBadResolution = errors.New("resolution must be positive")
)

// Extents returns the grid size as (height, width).
func (m *Map) Extents() (int, int) {
	if len(m.Cells) == 0 {
		return 0, 0
	}
	return len(m.Cells), len(m.Cells[0])
}

// Cell returns the cell at (x, y). Anything outside the grid is a wall.
func (m *Map) Cell(x, y int) Cell {
	if y < 0 || y >= len(m.Cells) || x < 0 || x >= len(m.Cells[y]) {
		return Wall
	}
	return m.Cells[y][x]
}

func (m *Map) IsWall(x, y int) bool {
	return m.Cell(x, y) == Wall
}

func (m *Map) Texture(d geometry.Direction) Texture {
	if d < 0 || int(d) >= len(m.Textures) {
		return nil
	}
	return m.Textures[d]
}

// Validate checks the contract the renderer relies on: a positive
// resolution, a rectangular grid, a spawn on an open cell, and no open cell
// reachable from the spawn that touches the grid edge. Reachability is
// 8-connected since a ray can slip between two diagonal walls.
func (m *Map) Validate() error {
	if m.Resolution.Width <= 0 || m.Resolution.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadResolution, m.Resolution.Width, m.Resolution.Height)
	}
	h, w := m.Extents()
	if h == 0 || w == 0 {
		return ErrEmptyMap
	}
	for y, row := range m.Cells {
		if len(row) != w {
			return fmt.Errorf("row %d has %d cells, expected %d", y, len(row), w)
		}
	}
	if m.Cell(m.Spawn.X, m.Spawn.Y) == Wall {
		return fmt.Errorf("%w: (%d, %d)", ErrBadSpawn, m.Spawn.X, m.Spawn.Y)
	}

	seen := make([]bool, w*h)
	stack := [][2]int{{m.Spawn.X, m.Spawn.Y}}
	seen[m.Spawn.Y*w+m.Spawn.X] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p[0] == 0 || p[1] == 0 || p[0] == w-1 || p[1] == h-1 {
			return fmt.Errorf("%w: open cell (%d, %d) reaches the edge", ErrNotEnclosed, p[0], p[1])
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := p[0]+dx, p[1]+dy
				if seen[y*w+x] || m.Cells[y][x] == Wall {
					continue
				}
				seen[y*w+x] = true
				stack = append(stack, [2]int{x, y})
			}
		}
	}
	return nil
}

func formatRGB(c color.RGBA) string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// String renders the map the way the loadmap command prints it.
func (m *Map) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "resolution %dx%d\n", m.Resolution.Width, m.Resolution.Height)
	fmt.Fprintf(&sb, "floor: %s\n", formatRGB(m.Floor))
	fmt.Fprintf(&sb, "ceiling: %s\n", formatRGB(m.Ceiling))
	fmt.Fprintf(&sb, "spawn: %s\n", m.Spawn)

	h, w := m.Extents()
	fmt.Fprintf(&sb, "map layout: %dx%d\n", h, w)
	for _, row := range m.Cells {
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
