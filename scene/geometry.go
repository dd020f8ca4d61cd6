// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/interact/linear"
)

// Geometry is an indexed list of primitives in
// local space.
type Geometry struct {
	Positions []linear.V3
	// Indices into Positions. Every three indices form
	// a counter-clockwise triangle, or every two form a
	// line segment when Lines is set.
	Indices []uint32
	// Lines indicates that the geometry is made of line
	// segments. Such geometry is drawn but never hit.
	Lines bool
	// DoubleSided disables back-face culling in
	// Node.Intersect.
	DoubleSided bool
}

// Bounds returns the local-space box enclosing g's
// positions.
func (g *Geometry) Bounds() (b linear.Box) {
	b.Empty()
	for i := range g.Positions {
		b.ExpandPoint(&g.Positions[i])
	}
	return
}

// NewBox creates a box centered at the origin.
func NewBox(width, height, depth float32) *Geometry {
	var b linear.Box
	b.Max = linear.V3{width / 2, height / 2, depth / 2}
	b.Min.Scale(-1, &b.Max)
	c := b.Corners()
	return &Geometry{
		Positions: c[:],
		Indices: []uint32{
			1, 5, 7, 1, 7, 3, // +z
			0, 2, 6, 0, 6, 4, // -z
			4, 6, 7, 4, 7, 5, // +x
			0, 1, 3, 0, 3, 2, // -x
			2, 3, 7, 2, 7, 6, // +y
			0, 4, 5, 0, 5, 1, // -y
		},
	}
}

// NewWireBox creates line geometry outlining b.
func NewWireBox(b *linear.Box) *Geometry {
	c := b.Corners()
	return &Geometry{
		Positions: c[:],
		Indices: []uint32{
			0, 1, 1, 3, 3, 2, 2, 0,
			4, 5, 5, 7, 7, 6, 6, 4,
			0, 4, 1, 5, 2, 6, 3, 7,
		},
		Lines: true,
	}
}

// NewPlane creates a double-sided rectangle on the
// XY plane, facing +Z.
func NewPlane(width, height float32) *Geometry {
	w, h := width/2, height/2
	return &Geometry{
		Positions:   []linear.V3{{-w, -h, 0}, {w, -h, 0}, {w, h, 0}, {-w, h, 0}},
		Indices:     []uint32{0, 1, 2, 0, 2, 3},
		DoubleSided: true,
	}
}

// NewTorus creates a torus centered at the origin and
// lying on the XY plane.
// radius is the distance from the center to the center
// of the tube.
func NewTorus(radius, tube float32, radialSegs, tubularSegs int) *Geometry {
	radialSegs = max(radialSegs, 3)
	tubularSegs = max(tubularSegs, 3)
	g := &Geometry{
		Positions: make([]linear.V3, 0, (radialSegs+1)*(tubularSegs+1)),
		Indices:   make([]uint32, 0, radialSegs*tubularSegs*6),
	}
	for j := 0; j <= radialSegs; j++ {
		sv, cv := math32.Sincos(float32(j) / float32(radialSegs) * 2 * math32.Pi)
		for i := 0; i <= tubularSegs; i++ {
			su, cu := math32.Sincos(float32(i) / float32(tubularSegs) * 2 * math32.Pi)
			g.Positions = append(g.Positions, linear.V3{
				(radius + tube*cv) * cu,
				(radius + tube*cv) * su,
				tube * sv,
			})
		}
	}
	row := uint32(tubularSegs + 1)
	for j := uint32(1); j <= uint32(radialSegs); j++ {
		for i := uint32(1); i <= uint32(tubularSegs); i++ {
			a := row*j + i - 1
			b := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// NewSphere creates a sphere centered at the origin.
func NewSphere(radius float32, widthSegs, heightSegs int) *Geometry {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 2)
	g := &Geometry{
		Positions: make([]linear.V3, 0, (widthSegs+1)*(heightSegs+1)),
		Indices:   make([]uint32, 0, widthSegs*heightSegs*6),
	}
	for iy := 0; iy <= heightSegs; iy++ {
		sv, cv := math32.Sincos(float32(iy) / float32(heightSegs) * math32.Pi)
		for ix := 0; ix <= widthSegs; ix++ {
			su, cu := math32.Sincos(float32(ix) / float32(widthSegs) * 2 * math32.Pi)
			g.Positions = append(g.Positions, linear.V3{
				-radius * cu * sv,
				radius * cv,
				radius * su * sv,
			})
		}
	}
	row := uint32(widthSegs + 1)
	for iy := uint32(0); iy < uint32(heightSegs); iy++ {
		for ix := uint32(0); ix < uint32(widthSegs); ix++ {
			a := row*iy + ix + 1
			b := row*iy + ix
			c := row*(iy+1) + ix
			d := row*(iy+1) + ix + 1
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != uint32(heightSegs)-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}
