// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Box is an axis-aligned bounding box.
// A box whose Min is greater than its Max in any
// dimension is empty.
type Box struct {
	Min V3
	Max V3
}

// Empty makes b an empty box.
// Expanding an empty box by a point yields a box
// containing only that point.
func (b *Box) Empty() {
	inf := math32.Inf(1)
	b.Min = V3{inf, inf, inf}
	b.Max = V3{-inf, -inf, -inf}
}

// IsEmpty returns whether b contains no points.
func (b *Box) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandPoint grows b to contain p.
func (b *Box) ExpandPoint(p *V3) {
	b.Min.Min(&b.Min, p)
	b.Max.Max(&b.Max, p)
}

// Union sets b to contain the smallest box that
// contains both l and r.
func (b *Box) Union(l, r *Box) {
	b.Min.Min(&l.Min, &r.Min)
	b.Max.Max(&l.Max, &r.Max)
}

// Center returns the center of b.
func (b *Box) Center() (c V3) {
	c.Add(&b.Min, &b.Max)
	c.Scale(0.5, &c)
	return
}

// Size returns the extent of b in each dimension.
func (b *Box) Size() (s V3) {
	if b.IsEmpty() {
		return
	}
	s.Sub(&b.Max, &b.Min)
	return
}

// Corners returns the eight corners of b.
func (b *Box) Corners() [8]V3 {
	n, x := &b.Min, &b.Max
	return [8]V3{
		{n[0], n[1], n[2]},
		{n[0], n[1], x[2]},
		{n[0], x[1], n[2]},
		{n[0], x[1], x[2]},
		{x[0], n[1], n[2]},
		{x[0], n[1], x[2]},
		{x[0], x[1], n[2]},
		{x[0], x[1], x[2]},
	}
}

// Transform sets b to contain the axis-aligned box that
// encloses c transformed by m.
// The result is empty if c is empty.
func (b *Box) Transform(m *M4, c *Box) {
	if c.IsEmpty() {
		b.Empty()
		return
	}
	corners := c.Corners()
	b.Empty()
	for i := range corners {
		corners[i].Transform(m, &corners[i])
		b.ExpandPoint(&corners[i])
	}
}

// Contains returns whether p lies inside b or on its
// boundary.
func (b *Box) Contains(p *V3) bool {
	for i := range p {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}
