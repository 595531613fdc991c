/*
 * Copyright (C) 2023 by Jason Figge
 */

package geometry

import (
	"fmt"
	"math"
)

// Hit is a ray crossing into a cell, classified by the face it struck.
type Hit struct {
	X         int
	Y         int
	Direction Direction
	Position  float64 // fractional coordinate along the face, [0,1)
	Distance  float64 // squared
}

func (h Hit) String() string {
	return fmt.Sprintf("{%d,%d %s %.4g %.4g}", h.X, h.Y, h.Direction, h.Position, h.Distance)
}

// lookahead holds at most one crossing pulled from an interceptor but not
// yet consumed.
type lookahead struct {
	src    *Interceptor
	head   Crossing
	ok     bool
	primed bool
}

func (l *lookahead) peek() (Crossing, bool) {
	if !l.primed {
		l.head, l.ok = l.src.Next()
		l.primed = true
	}
	return l.head, l.ok
}

func (l *lookahead) take() Crossing {
	c, _ := l.peek()
	l.primed = false
	return c
}

// Raycaster merges the vertical and horizontal crossings of one ray into a
// single sequence ordered by distance. The sequence ends when both axes are
// spent or as soon as a crossing falls outside the grid.
type Raycaster struct {
	d    Vector
	grid Grid
	xs   lookahead
	ys   lookahead
	done bool
}

func NewRaycaster(p, d Vector, g Grid) *Raycaster {
	return &Raycaster{
		d:    d,
		grid: g,
		xs:   lookahead{src: NewInterceptor(p, d, g.Width)},
		ys:   lookahead{src: NewInterceptor(p.Flip(), d.Flip(), g.Height)},
	}
}

// Next returns the nearest pending hit.
func (r *Raycaster) Next() (Hit, bool) {
	if r.done {
		return Hit{}, false
	}

	px, okx := r.xs.peek()
	py, oky := r.ys.peek()

	var vertical bool
	switch {
	case okx && oky:
		// ties go to the vertical line
		vertical = px.Distance <= py.Distance
	case okx:
		vertical = true
	case oky:
		vertical = false
	default:
		r.done = true
		return Hit{}, false
	}

	var h Hit
	if vertical {
		h = r.vertical(r.xs.take())
	} else {
		h = r.horizontal(r.ys.take())
	}

	if math.IsInf(h.Distance, 0) || !r.grid.Contains(h.X, h.Y) {
		r.done = true
		return Hit{}, false
	}
	return h, true
}

func (r *Raycaster) vertical(c Crossing) Hit {
	h := Hit{Distance: c.Distance}
	if math.IsInf(c.Distance, 0) {
		return h
	}
	fy := math.Floor(c.Point.Y)
	h.Y = int(fy)
	h.Position = c.Point.Y - fy
	if r.d.X < 0 {
		h.X, h.Direction = c.Index-1, E
	} else {
		h.X, h.Direction = c.Index, W
	}
	return h
}

func (r *Raycaster) horizontal(c Crossing) Hit {
	h := Hit{Distance: c.Distance}
	if math.IsInf(c.Distance, 0) {
		return h
	}
	q := c.Point.Flip()
	fx := math.Floor(q.X)
	h.X = int(fx)
	h.Position = q.X - fx
	if r.d.Y < 0 {
		h.Y, h.Direction = c.Index-1, S
	} else {
		h.Y, h.Direction = c.Index, N
	}
	return h
}

// Collect drains the remaining hits.
func (r *Raycaster) Collect() []Hit {
	var hits []Hit
	for h, ok := r.Next(); ok; h, ok = r.Next() {
		hits = append(hits, h)
	}
	return hits
}

// FirstWall returns the nearest remaining hit whose cell satisfies isWall,
// along with the number of hits examined to find it.
func (r *Raycaster) FirstWall(isWall func(x, y int) bool) (Hit, int, bool) {
	n := 0
	for h, ok := r.Next(); ok; h, ok = r.Next() {
		n++
		if isWall(h.X, h.Y) {
			return h, n, true
		}
	}
	return Hit{}, n, false
}
