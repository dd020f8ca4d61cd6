// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/interact/linear"
)

// Camera is a perspective camera.
type Camera struct {
	// Vertical field of view, in degrees.
	Fov float32
	// Width over height of the viewport.
	Aspect float32
	// Distance of the far plane. Renderers drop
	// geometry farther than this.
	Far float32

	Position linear.V3

	fwd   linear.V3
	right linear.V3
	up    linear.V3
}

// NewCamera creates a camera at the origin looking down
// the -Z axis.
func NewCamera(fov, aspect, far float32) *Camera {
	c := &Camera{Fov: fov, Aspect: aspect, Far: far}
	c.LookAt(&linear.V3{0, 0, -1}, &linear.V3{0, 1, 0})
	return c
}

// SetAspect updates the aspect ratio of c.
// Non-positive values are ignored.
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// LookAt orients c so that it faces target from its
// current Position.
// up must not be parallel to the view direction.
func (c *Camera) LookAt(target, up *linear.V3) {
	c.fwd.Sub(target, &c.Position)
	c.fwd.Norm(&c.fwd)
	c.right.Cross(&c.fwd, up)
	c.right.Norm(&c.right)
	c.up.Cross(&c.right, &c.fwd)
}

func (c *Camera) halfExtent() (w, h float32) {
	h = math32.Tan(c.Fov * math32.Pi / 360)
	return h * c.Aspect, h
}

// Ray returns the world-space ray that leaves the camera
// through the given normalized device coordinates.
// Dir is a unit vector.
func (c *Camera) Ray(x, y float32) (r linear.Ray) {
	w, h := c.halfExtent()
	var dx, dy linear.V3
	dx.Scale(x*w, &c.right)
	dy.Scale(y*h, &c.up)
	r.Dir.Add(&c.fwd, &dx)
	r.Dir.Add(&r.Dir, &dy)
	r.Dir.Norm(&r.Dir)
	r.Origin = c.Position
	return
}

// Project maps the world-space point p to normalized
// device coordinates.
// ok is false when p lies behind the camera.
func (c *Camera) Project(p *linear.V3) (x, y float32, ok bool) {
	var d linear.V3
	d.Sub(p, &c.Position)
	z := d.Dot(&c.fwd)
	if z <= 0 {
		return
	}
	w, h := c.halfExtent()
	x = d.Dot(&c.right) / (z * w)
	y = d.Dot(&c.up) / (z * h)
	return x, y, true
}
