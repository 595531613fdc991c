/*
 * Copyright (C) 2023 by Jason Figge
 */

package geometry

import "math"

// Vector is a 2D point or direction.
type Vector struct {
	X float64
	Y float64
}

func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Angle returns the unit vector at theta radians.
func Angle(theta float64) Vector {
	return Vector{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Flip swaps the coordinates, mapping horizontal grid lines onto vertical ones.
func (v Vector) Flip() Vector {
	return Vector{X: v.Y, Y: v.X}
}

// Turn rotates the vector a quarter turn: (x,y) -> (-y,x).
func (v Vector) Turn() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) SquaredDistance(o Vector) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

func (v Vector) SquaredNorm() float64 {
	return v.X*v.X + v.Y*v.Y
}
