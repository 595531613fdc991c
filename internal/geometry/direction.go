/*
 * Copyright (C) 2023 by Jason Figge
 */

package geometry

import (
	"fmt"
	"math"
)

// Direction is a cardinal wall face, or the way a spawn faces.
type Direction int

const (
	N Direction = iota
	S
	E
	W
)

var Directions = []Direction{N, S, E, W}

// Angle returns the facing angle in radians. The y axis grows downward, so
// south is a quarter turn clockwise from east.
func (d Direction) Angle() float64 {
	switch d {
	case E:
		return 0
	case S:
		return math.Pi / 2
	case W:
		return math.Pi
	default:
		return 3 * math.Pi / 2
	}
}

func (d Direction) String() string {
	switch d {
	case N:
		return "N"
	case S:
		return "S"
	case E:
		return "E"
	case W:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a map-file letter to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'N':
		return N, true
	case 'S':
		return S, true
	case 'E':
		return E, true
	case 'W':
		return W, true
	}
	return 0, false
}
