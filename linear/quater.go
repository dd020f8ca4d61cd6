// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Q is a quaternion of float32.
type Q struct {
	V V3
	R float32
}

// I makes q an identity quaternion.
func (q *Q) I() { *q = Q{R: 1} }

// Mul sets q to contain l ⋅ r.
func (q *Q) Mul(l, r *Q) {
	var v, w, x V3
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	x.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	rr := l.R*r.R - d
	v.Add(&v, &w)
	q.V.Add(&v, &x)
	q.R = rr
}

// Rotate sets q to contain a rotation of angle radians
// around axis.
// axis must be a unit vector.
func (q *Q) Rotate(angle float32, axis *V3) {
	s, c := math32.Sincos(angle * 0.5)
	q.V.Scale(s, axis)
	q.R = c
}

// Norm sets q to contain p normalized.
func (q *Q) Norm(p *Q) {
	l := math32.Sqrt(p.V.Dot(&p.V) + p.R*p.R)
	q.V.Scale(1/l, &p.V)
	q.R = p.R / l
}
