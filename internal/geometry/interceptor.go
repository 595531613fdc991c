/*
 * Copyright (C) 2023 by Jason Figge
 */

package geometry

import "math"

// Crossing is a ray's intersection with one integer grid line.
type Crossing struct {
	Index    int
	Distance float64 // squared, from the ray origin
	Point    Vector
}

// Interceptor walks the vertical grid lines x = 1 .. size-2 that a semi-line
// from p along d may cross, nearest first. Horizontal lines are handled by
// flipping p and d before construction.
//
// An Interceptor is a cursor: it is consumed once and must not be shared
// between goroutines.
type Interceptor struct {
	p     Vector
	slope float64
	next  int
	stop  int
	step  int
}

func NewInterceptor(p, d Vector, size int) *Interceptor {
	it := &Interceptor{p: p, slope: d.Y / d.X, step: 1}
	if size == 0 || p.X < 0 {
		return it
	}

	ceil := int(math.Ceil(p.X))
	if d.X < 0 {
		it.next, it.stop, it.step = ceil-1, 0, -1
	} else {
		it.next, it.stop = ceil, size-1
	}
	return it
}

func (it *Interceptor) exhausted() bool {
	if it.step > 0 {
		return it.next >= it.stop
	}
	return it.next <= it.stop
}

// Next returns the next crossing, or false once the range is spent.
func (it *Interceptor) Next() (Crossing, bool) {
	if it.exhausted() {
		return Crossing{}, false
	}
	i := it.next
	it.next += it.step

	x := float64(i)
	pt := Vector{X: x, Y: it.p.Y + (x-it.p.X)*it.slope}
	dist := it.p.SquaredDistance(pt)
	if math.IsNaN(dist) {
		// 0 * Inf on an axis-parallel ray starting on a grid line
		dist = math.Inf(1)
	}
	return Crossing{Index: i, Distance: dist, Point: pt}, true
}
