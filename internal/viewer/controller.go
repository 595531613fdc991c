/*
 * Copyright (C) 2023 by Jason Figge
 */

package viewer

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"ray-casting/internal/geometry"
	"ray-casting/internal/level"
	"ray-casting/internal/render"
)

const (
	Background = uint32(0x232323FF)
	WallColor  = uint32(0x0000FFFF)
	ItemColor  = uint32(0x99CC99FF)
	RayColor   = uint32(0xFFFFFF16)
	CamColor   = uint32(0xFF0000FF)

	RayStride = 8 // draw every Nth column's ray on the arena
)

// Controller shows a rendered frame in a window: the top-down arena with the
// cast rays on the left, the frame itself on the right.
type Controller struct {
	title   string
	r       *render.Render
	frame   *image.RGBA
	cell    float32
	arena   sdl.FRect
	portal  sdl.Rect
	running bool
}

func NewController(title string, r *render.Render) *Controller {
	frame := r.Frame()
	fw, fh := int32(frame.Bounds().Dx()), int32(frame.Bounds().Dy())
	mh, mw := r.Map().Extents()

	cell := float32(fh) / float32(max(mh, mw))
	aw := cell * float32(mw)
	ah := cell * float32(mh)
	return &Controller{
		title:  title,
		r:      r,
		frame:  frame,
		cell:   cell,
		arena:  sdl.FRect{X: 0, Y: (float32(fh) - ah) / 2, W: aw, H: ah},
		portal: sdl.Rect{X: int32(aw) + 1, Y: 0, W: fw, H: fh},
	}
}

// Size is the window size needed for the arena and the portal.
func (c *Controller) Size() (int32, int32) {
	return c.portal.X + c.portal.W, c.portal.H
}

// Run opens the window and blocks until it is closed.
func (c *Controller) Run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	w, h := c.Size()
	window, err := sdl.CreateWindow(c.title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()
	trap(renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND))

	portal, err := c.portalTexture(renderer)
	if err != nil {
		return err
	}
	defer portal.Destroy()

	c.running = true
	c.OnDraw(renderer, portal)
	for c.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if c.Events(event) {
				c.OnDraw(renderer, portal)
			}
		}
		sdl.Delay(16)
	}
	return nil
}

func (c *Controller) Quit() {
	c.running = false
}

// Events handles one SDL event and reports whether the window needs a redraw.
func (c *Controller) Events(event sdl.Event) bool {
	processed := false
	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.Quit()
	case *sdl.WindowEvent:
		processed = e.Event == sdl.WINDOWEVENT_EXPOSED
	case *sdl.KeyboardEvent:
		processed = c.keyboardEvent(e)
	}
	return processed
}

func (c *Controller) keyboardEvent(event *sdl.KeyboardEvent) bool {
	if event.State != sdl.PRESSED {
		return false
	}
	if event.Keysym.Scancode == sdl.SCANCODE_Q || event.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
		c.Quit()
		return true
	}
	return false
}

func (c *Controller) OnDraw(renderer *sdl.Renderer, portal *sdl.Texture) {
	setColor(renderer, Background)
	trap(renderer.Clear())
	c.drawWalls(renderer)
	c.drawRays(renderer)
	trap(renderer.Copy(portal, nil, &c.portal))
	renderer.Present()
}

// portalTexture uploads the frame. image.RGBA stores R,G,B,A bytes, which is
// ABGR8888 on a little-endian host.
func (c *Controller) portalTexture(renderer *sdl.Renderer) (*sdl.Texture, error) {
	b := c.frame.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	trap(surface.Lock())
	pixels := surface.Pixels()
	for y := 0; y < b.Dy(); y++ {
		row := c.frame.Pix[y*c.frame.Stride : y*c.frame.Stride+b.Dx()*4]
		copy(pixels[y*int(surface.Pitch):], row)
	}
	surface.Unlock()

	return renderer.CreateTextureFromSurface(surface)
}

func (c *Controller) drawWalls(renderer *sdl.Renderer) {
	m := c.r.Map()
	h, w := m.Extents()
	rect := &sdl.FRect{W: c.cell, H: c.cell}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch m.Cell(x, y) {
			case level.Wall:
				setColor(renderer, WallColor)
			case level.Item:
				setColor(renderer, ItemColor)
			default:
				continue
			}
			rect.X, rect.Y = c.toArena(geometry.V(float64(x), float64(y)))
			trap(renderer.FillRectF(rect))
		}
	}
}

func (c *Controller) drawRays(renderer *sdl.Renderer) {
	pos := c.r.Position()
	x1, y1 := c.toArena(pos)
	setColor(renderer, RayColor)
	for i, ray := range c.r.Rays() {
		if i%RayStride != 0 {
			continue
		}
		x2, y2 := c.toArena(ray.End(pos))
		trap(renderer.DrawLineF(x1, y1, x2, y2))
	}

	setColor(renderer, CamColor)
	x2, y2 := c.toArena(pos.Add(c.r.Camera().Scale(0.5)))
	trap(renderer.DrawLineF(x1, y1, x2, y2))
}

// toArena maps grid coordinates to window coordinates.
func (c *Controller) toArena(v geometry.Vector) (float32, float32) {
	return c.arena.X + float32(v.X)*c.cell, c.arena.Y + float32(v.Y)*c.cell
}

func setColor(renderer *sdl.Renderer, color uint32) {
	trap(renderer.SetDrawColor(uint8(color>>24), uint8(color>>16), uint8(color>>8), uint8(color)))
}

// trap panics on SDL failures that leave nothing sensible to draw.
func trap(err error) {
	if err != nil {
		panic(err)
	}
}
