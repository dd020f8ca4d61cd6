// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/interact/linear"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Node represents a single node in a scene graph.
// Nodes have at most one immediate ancestor and
// an arbitrary number of immediate descendants.
type Node struct {
	next *Node
	prev *Node
	sub  *Node

	// Name for the node.
	// It is not used by node code.
	Name string

	// Local transform, applied as
	// translation ⋅ rotation ⋅ scale.
	Position linear.V3
	Rotation linear.Q
	Scale    linear.V3

	// Visible indicates whether the node takes part in
	// rendering and hit testing.
	Visible bool

	// Geometry of the node. It may be nil.
	Geometry *Geometry

	Color Color
}

// NewNode creates an initialized node.
func NewNode() *Node { return new(Node).Init() }

// Init initializes node n with an identity transform
// and sets it visible.
func (n *Node) Init() *Node {
	n.Position = linear.V3{}
	n.Rotation.I()
	n.Scale = linear.V3{1, 1, 1}
	n.Visible = true
	return n
}

// Insert inserts node sub as immediate descendant
// of node n.
// sub must be either a descendant of n or part of
// an unrelated graph - it must not be an ancestor
// of node n.
func (n *Node) Insert(sub *Node) {
	sub.Remove()
	sub.next = n.sub
	sub.prev = n
	if n.sub != nil {
		n.sub.prev = sub
	}
	n.sub = sub
}

// Remove removes node n from its immediate ancestor.
func (n *Node) Remove() {
	// Node.prev is only nil when the node has no
	// ancestors, since the prev field of the first
	// immediate descendant refers to its immediate
	// ancestor.
	if n.prev != nil {
		if n.prev.sub == n {
			n.prev.sub = n.next
		} else {
			n.prev.next = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		}
		n.prev = nil
		n.next = nil
	}
}

// Parent returns the immediate ancestor of n, or nil
// if n has none.
func (n *Node) Parent() *Node {
	for x := n; x.prev != nil; x = x.prev {
		if x.prev.sub == x {
			return x.prev
		}
	}
	return nil
}

// ForEach calls f for each descendant of node n.
// Ancestors are processed first.
// The scene graph must not be changed until this
// method returns.
func (n *Node) ForEach(f func(*Node)) {
	n.Until(func(nd *Node) bool {
		f(nd)
		return true
	})
}

// Until calls f for each descendant of node n.
// Ancestors are processed first. If f returns false,
// Until returns immediately.
// The scene graph must not be changed until this
// method returns.
func (n *Node) Until(f func(*Node) bool) {
	if n.sub == nil {
		return
	}
	que := []*Node{n.sub}
	for len(que) > 0 {
		for nd := que[0]; nd != nil; nd = nd.next {
			if !f(nd) {
				return
			}
			if sub := nd.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// Local returns the local transform of n.
func (n *Node) Local() (m linear.M4) {
	m.TRS(&n.Position, &n.Rotation, &n.Scale)
	return
}

// World returns the transform of n relative to the
// root of its graph.
func (n *Node) World() linear.M4 {
	w := n.Local()
	for p := n.Parent(); p != nil; p = p.Parent() {
		l := p.Local()
		w.Mul(&l, &w)
	}
	return w
}

// BoundingBox computes the world-space axis-aligned box
// enclosing the geometry of n and of its descendants.
// The box is empty when there is no geometry.
// It is computed from the current transforms and is not
// updated afterwards.
func (n *Node) BoundingBox() (b linear.Box) {
	b.Empty()
	expand := func(nd *Node) {
		if nd.Geometry == nil {
			return
		}
		w := nd.World()
		lb := nd.Geometry.Bounds()
		var wb linear.Box
		wb.Transform(&w, &lb)
		if !wb.IsEmpty() {
			b.Union(&b, &wb)
		}
	}
	expand(n)
	n.ForEach(expand)
	return
}

// Hit describes an intersection between a ray and a
// node's geometry.
type Hit struct {
	Node *Node
	// Distance from the ray's origin, in world units.
	Distance float32
	// World-space position of the intersection.
	Point linear.V3
	// World-space unit normal of the intersected face.
	Normal linear.V3
	// Index of the intersected triangle.
	Face int
}

// Intersect tests ray against the geometry of n (but not
// against that of its descendants).
// It returns the nearest intersection, if any.
// Line geometry is never intersected. Back faces are
// ignored unless the geometry is double-sided.
func (n *Node) Intersect(ray linear.Ray) (hit Hit, ok bool) {
	g := n.Geometry
	if g == nil || g.Lines || len(g.Indices) < 3 {
		return
	}
	w := n.World()
	var inv linear.M4
	inv.Invert(&w)
	var lr linear.Ray
	lr.Transform(&inv, &ray)

	tmin := math32.Inf(1)
	face := -1
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := &g.Positions[g.Indices[i]]
		b := &g.Positions[g.Indices[i+1]]
		c := &g.Positions[g.Indices[i+2]]
		if t, hit := lr.IntersectTriangle(a, b, c, !g.DoubleSided); hit && t < tmin {
			tmin = t
			face = i / 3
		}
	}
	if face < 0 {
		return
	}

	hit.Node = n
	hit.Face = face
	hit.Point = ray.At(tmin)
	hit.Distance = tmin * ray.Dir.Len()
	var e1, e2 linear.V3
	a := &g.Positions[g.Indices[face*3]]
	e1.Sub(&g.Positions[g.Indices[face*3+1]], a)
	e2.Sub(&g.Positions[g.Indices[face*3+2]], a)
	hit.Normal.Cross(&e1, &e2)
	var nm linear.M4
	nm.Transpose(&inv)
	hit.Normal.TransformDir(&nm, &hit.Normal)
	if l := hit.Normal.Len(); l > 0 {
		hit.Normal.Scale(1/l, &hit.Normal)
	}
	return hit, true
}
