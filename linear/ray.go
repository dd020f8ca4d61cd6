// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Ray is a half-line starting at Origin and extending
// towards Dir.
// Distances reported by Ray methods are expressed in
// units of Dir's length, so they are Euclidean
// distances only when Dir is a unit vector.
type Ray struct {
	Origin V3
	Dir    V3
}

// At returns the point at parameter t along r.
func (r *Ray) At(t float32) (p V3) {
	p.Scale(t, &r.Dir)
	p.Add(&r.Origin, &p)
	return
}

// Transform sets r to contain s transformed by m.
// Dir is not renormalized, so parameters of points
// along s and r match.
func (r *Ray) Transform(m *M4, s *Ray) {
	r.Origin.Transform(m, &s.Origin)
	r.Dir.TransformDir(m, &s.Dir)
}

// IntersectBox reports whether r intersects b.
// If so, it also returns the smallest non-negative
// parameter at which r is inside b (zero when Origin
// is inside b).
func (r *Ray) IntersectBox(b *Box) (t float32, ok bool) {
	if b.IsEmpty() {
		return
	}
	tmin := float32(0)
	tmax := math32.Inf(1)
	for i := range r.Dir {
		if r.Dir[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t0 := (b.Min[i] - r.Origin[i]) * inv
		t1 := (b.Max[i] - r.Origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math32.Max(tmin, t0)
		tmax = math32.Min(tmax, t1)
		if tmin > tmax {
			return
		}
	}
	return tmin, true
}

// IntersectTriangle reports whether r intersects the
// triangle abc.
// If cullBack is true, triangles whose counter-clockwise
// side faces away from r are ignored.
func (r *Ray) IntersectTriangle(a, b, c *V3, cullBack bool) (t float32, ok bool) {
	const eps = 1e-7
	var e1, e2, p, s, q V3
	e1.Sub(b, a)
	e2.Sub(c, a)
	p.Cross(&r.Dir, &e2)
	det := e1.Dot(&p)
	if cullBack {
		if det < eps {
			return
		}
	} else if math32.Abs(det) < eps {
		return
	}
	inv := 1 / det
	s.Sub(&r.Origin, a)
	u := s.Dot(&p) * inv
	if u < 0 || u > 1 {
		return
	}
	q.Cross(&s, &e1)
	v := r.Dir.Dot(&q) * inv
	if v < 0 || u+v > 1 {
		return
	}
	t = e2.Dot(&q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
