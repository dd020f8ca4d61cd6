// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package term

import (
	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"

	"github.com/gviegas/interact/linear"
	"github.com/gviegas/interact/scene"
)

// Canvas is the interface that defines a grid of
// character cells. tcell.Screen implements it.
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Shades of lit surfaces, from darkest to brightest.
const shades = ".:-=+*#%@"

// Background is the style of empty cells.
var Background = tcell.StyleDefault.Background(tcell.ColorBlack)

// Renderer draws scenes on a Canvas by casting one ray
// per cell. Line geometry is drawn on top of surfaces.
type Renderer struct {
	canvas Canvas
	light  linear.V3
	objs   []object
}

type object struct {
	node *scene.Node
	box  linear.Box
}

// NewRenderer creates a renderer that draws on c.
func NewRenderer(c Canvas) *Renderer {
	r := &Renderer{canvas: c}
	r.light = linear.V3{-1, 1, 1}
	r.light.Norm(&r.light)
	return r
}

// SetLight sets the direction towards the light.
func (r *Renderer) SetLight(dir *linear.V3) { r.light.Norm(dir) }

// Render implements loop.Renderer.
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera) {
	w, h := r.canvas.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.objs = r.objs[:0]
	var lines []*scene.Node
	sc.ForEach(func(n *scene.Node) {
		if !n.Visible || n.Geometry == nil {
			return
		}
		if n.Geometry.Lines {
			lines = append(lines, n)
			return
		}
		var o object
		o.node = n
		lb := n.Geometry.Bounds()
		wm := n.World()
		o.box.Transform(&wm, &lb)
		r.objs = append(r.objs, o)
	})

	for y := range h {
		ny := -(float32(y)+0.5)/float32(h)*2 + 1
		for x := range w {
			nx := (float32(x)+0.5)/float32(w)*2 - 1
			ray := cam.Ray(nx, ny)
			ch, st := r.shade(&ray, cam.Far)
			r.canvas.SetContent(x, y, ch, nil, st)
		}
	}
	for _, n := range lines {
		r.drawLines(n, cam, w, h)
	}
	r.canvas.Show()
}

// shade returns the content of the cell that ray crosses.
// Hits farther than far are dropped unless far is not
// positive.
func (r *Renderer) shade(ray *linear.Ray, far float32) (rune, tcell.Style) {
	var best scene.Hit
	found := false
	for i := range r.objs {
		o := &r.objs[i]
		if _, ok := ray.IntersectBox(&o.box); !ok {
			continue
		}
		hit, ok := o.node.Intersect(*ray)
		if !ok || (far > 0 && hit.Distance > far) {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	if !found {
		return ' ', Background
	}
	n := best.Normal
	if n.Dot(&ray.Dir) > 0 {
		n.Scale(-1, &n)
	}
	// Some ambient term keeps unlit faces visible.
	k := 0.2 + 0.8*max(n.Dot(&r.light), 0)
	i := min(int(k*float32(len(shades))), len(shades)-1)
	c := best.Node.Color
	fg := tcell.NewRGBColor(scale(c.R, k), scale(c.G, k), scale(c.B, k))
	return rune(shades[i]), Background.Foreground(fg)
}

func scale(c uint8, k float32) int32 { return int32(float32(c)*k + 0.5) }

// drawLines draws the segments of n's line geometry.
func (r *Renderer) drawLines(n *scene.Node, cam *scene.Camera, w, h int) {
	g := n.Geometry
	wm := n.World()
	c := n.Color
	st := Background.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	cell := func(p *linear.V3) (x, y int, ok bool) {
		var wp linear.V3
		wp.Transform(&wm, p)
		nx, ny, ok := cam.Project(&wp)
		if !ok {
			return
		}
		// Points projected far off the canvas are skipped
		// rather than walked.
		if math32.Abs(nx) > 4 || math32.Abs(ny) > 4 {
			return
		}
		x = int(math32.Floor((nx + 1) / 2 * float32(w)))
		y = int(math32.Floor((1 - ny) / 2 * float32(h)))
		return x, y, true
	}
	for i := 0; i+1 < len(g.Indices); i += 2 {
		x0, y0, ok0 := cell(&g.Positions[g.Indices[i]])
		x1, y1, ok1 := cell(&g.Positions[g.Indices[i+1]])
		if !ok0 || !ok1 {
			continue
		}
		line(x0, y0, x1, y1, func(x, y int) {
			if x >= 0 && x < w && y >= 0 && y < h {
				r.canvas.SetContent(x, y, '+', nil, st)
			}
		})
	}
}

// line calls plot for every cell of the segment from
// (x0, y0) to (x1, y1).
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
