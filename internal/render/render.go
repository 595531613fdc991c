/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"ray-casting/internal/geometry"
	"ray-casting/internal/level"
	"ray-casting/internal/metrics"
)

const (
	HorizontalFOV = 30 * math.Pi / 180
	EyeHeight     = 0.6
)

type Options struct {
	FOV       float64 // horizontal, radians
	EyeHeight float64 // fraction of a wall
	Workers   int
	Metrics   *metrics.Recorder
}

func DefaultOptions() Options {
	return Options{FOV: HorizontalFOV, EyeHeight: EyeHeight, Workers: 1}
}

// Ray is the cast made for one screen column and the wall it struck.
type Ray struct {
	Dir geometry.Vector
	Hit geometry.Hit
}

// End is the point where the ray meets its wall.
func (r Ray) End(origin geometry.Vector) geometry.Vector {
	return origin.Add(r.Dir.Scale(math.Sqrt(r.Hit.Distance / r.Dir.SquaredNorm())))
}

// Render owns the camera and the frame buffer for one map.
type Render struct {
	m       *level.Map
	grid    geometry.Grid
	pos     geometry.Vector
	cam     geometry.Vector
	plane   geometry.Vector
	fov     float64
	vfov    float64
	eye     float64
	workers int
	buffer  *image.RGBA
	rays    []Ray
	metrics *metrics.Recorder
}

// Spawn places the camera at the centre of the map's spawn cell, facing the
// spawn direction.
func Spawn(m *level.Map, opts Options) (*Render, error) {
	w, h := m.Resolution.Width, m.Resolution.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", level.ErrBadResolution, w, h)
	}
	for _, d := range geometry.Directions {
		if m.Texture(d) == nil {
			return nil, fmt.Errorf("map has no texture for face %s", d)
		}
	}
	if opts.FOV <= 0 || opts.FOV >= math.Pi/2 {
		return nil, fmt.Errorf("field of view %g out of range", opts.FOV)
	}
	if opts.EyeHeight <= 0 || opts.EyeHeight >= 1 {
		return nil, fmt.Errorf("eye height %g out of range", opts.EyeHeight)
	}

	// The stepper never reports the last grid line on the far side of an
	// axis, so cast over one extra row and column. Cells out there read as
	// walls.
	mh, mw := m.Extents()

	cam := geometry.Angle(m.Spawn.Direction.Angle())
	halfWidth := float64(w) / 2
	r := &Render{
		m:       m,
		grid:    geometry.Grid{Height: mh + 1, Width: mw + 1},
		pos:     geometry.V(float64(m.Spawn.X)+0.5, float64(m.Spawn.Y)+0.5),
		cam:     cam,
		plane:   cam.Turn().Scale(math.Sin(opts.FOV) / halfWidth),
		fov:     opts.FOV,
		vfov:    math.Asin(math.Sin(opts.FOV) * float64(h) / float64(w)),
		eye:     opts.EyeHeight,
		workers: max(opts.Workers, 1),
		buffer:  image.NewRGBA(image.Rect(0, 0, w, h)),
		rays:    make([]Ray, w),
		metrics: opts.Metrics,
	}
	return r, nil
}

func (r *Render) Frame() *image.RGBA {
	return r.buffer
}

func (r *Render) Position() geometry.Vector {
	return r.pos
}

func (r *Render) Camera() geometry.Vector {
	return r.cam
}

// Rays returns the ray cast for each column of the last frame.
func (r *Render) Rays() []Ray {
	return r.rays
}

// Map returns the map being rendered.
func (r *Render) Map() *level.Map {
	return r.m
}

// Render fills the whole frame. Columns are split into contiguous ranges,
// one per worker; each worker only touches its own columns.
func (r *Render) Render(ctx context.Context) error {
	start := time.Now()
	width := r.buffer.Bounds().Dx()

	if r.workers == 1 {
		if err := r.columns(ctx, 0, width); err != nil {
			return err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (width + r.workers - 1) / r.workers
		for lo := 0; lo < width; lo += chunk {
			lo, hi := lo, min(lo+chunk, width)
			g.Go(func() error {
				return r.columns(gctx, lo, hi)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	r.metrics.ObserveFrame(time.Since(start))
	return nil
}

func (r *Render) columns(ctx context.Context, lo, hi int) error {
	for x := lo; x < hi; x++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render stopped at column %d: %w", x, err)
		}
		r.Column(x)
	}
	return nil
}

// ErrNoWall reports a ray that left the map without striking a wall. The map
// loader guarantees enclosure, so this is a broken invariant and Column
// panics with it.
var ErrNoWall = errors.New("ray struck no wall")

// Column casts the ray for screen column x and shades it.
func (r *Render) Column(x int) {
	b := r.buffer.Bounds()
	height := b.Dy()
	halfWidth := float64(b.Dx()) / 2
	halfHeight := float64(height) / 2

	dir := r.cam.Add(r.plane.Scale(float64(x) - halfWidth))
	hit, examined, ok := geometry.NewRaycaster(r.pos, dir, r.grid).FirstWall(r.m.IsWall)
	if !ok {
		panic(fmt.Errorf("column %d: ray %v from %v: %w", x, dir, r.pos, ErrNoWall))
	}
	r.rays[x] = Ray{Dir: dir, Hit: hit}
	r.metrics.ObserveColumn(hit.Direction.String(), examined)

	vss := math.Sqrt(hit.Distance) * math.Tan(r.vfov)
	top := clip(halfHeight*(1-(1-r.eye)/vss), height)
	bottom := clip(halfHeight*(1+r.eye/vss), height)

	for y := 0; y < top; y++ {
		r.buffer.SetRGBA(x, y, r.m.Ceiling)
	}
	for y := bottom; y < height; y++ {
		r.buffer.SetRGBA(x, y, r.m.Floor)
	}

	tex := r.m.Texture(hit.Direction)
	u := hit.Position
	if hit.Direction == geometry.N || hit.Direction == geometry.E {
		u = 1 - u
	}
	span := float64(bottom - top)
	for y := top; y < bottom; y++ {
		r.buffer.SetRGBA(x, y, tex.Get(u, float64(y-top)/span))
	}
}

// clip floors v into a row index in [0, bound-1].
func clip(v float64, bound int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(bound-1) {
		return bound - 1
	}
	return int(math.Floor(v))
}
