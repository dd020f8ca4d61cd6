// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"
)

func near(a, b V3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-6 {
			return false
		}
	}
	return true
}

func TestV3(t *testing.T) {
	var u V3
	v := V3{3, -1, 2}
	w := V3{1, 4, -2}

	if u.Add(&v, &w); u != (V3{4, 3, 0}) {
		t.Fatalf("V3.Add\nhave %v\nwant [4 3 0]", u)
	}
	if u.Sub(&v, &w); u != (V3{2, -5, 4}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [2 -5 4]", u)
	}
	if d := v.Dot(&w); d != -5 {
		t.Fatalf("V3.Dot\nhave %v\nwant -5", d)
	}
	if u.Cross(&v, &w); u != (V3{-6, 8, 13}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [-6 8 13]", u)
	}
	if d := u.Dot(&v); d != 0 {
		t.Fatalf("V3.Cross: not orthogonal\nhave %v\nwant 0", d)
	}
	if u.Min(&v, &w); u != (V3{1, -1, -2}) {
		t.Fatalf("V3.Min\nhave %v\nwant [1 -1 -2]", u)
	}
	if u.Max(&v, &w); u != (V3{3, 4, 2}) {
		t.Fatalf("V3.Max\nhave %v\nwant [3 4 2]", u)
	}
	if l := (&V3{0, 3, 4}).Len(); l != 5 {
		t.Fatalf("V3.Len\nhave %v\nwant 5", l)
	}
	if u.Norm(&V3{0, 0, -2}); u != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 0 -1]", u)
	}
}

func TestV3Transform(t *testing.T) {
	var tr, sc, m M4
	tr.Translate(1, 2, 3)
	sc.Scale(2, 3, 4)
	m.Mul(&tr, &sc)

	p := V3{1, 1, 1}
	var u V3
	if u.Transform(&m, &p); u != (V3{3, 5, 7}) {
		t.Fatalf("V3.Transform\nhave %v\nwant [3 5 7]", u)
	}
	if u.TransformDir(&m, &p); u != (V3{2, 3, 4}) {
		t.Fatalf("V3.TransformDir\nhave %v\nwant [2 3 4]", u)
	}
	if p.Transform(&tr, &p); p != (V3{2, 3, 4}) {
		t.Fatalf("V3.Transform: aliased\nhave %v\nwant [2 3 4]", p)
	}
}

func TestM4(t *testing.T) {
	var m M4
	if m.I(); m != (M4{{1}, {1: 1}, {2: 1}, {3: 1}}) {
		t.Fatalf("M4.I\nhave %v", m)
	}

	n := M4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	want := M4{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	if m.Transpose(&n); m != want {
		t.Fatalf("M4.Transpose\nhave %v\nwant %v", m, want)
	}
	if n.Transpose(&n); n != want {
		t.Fatalf("M4.Transpose: aliased\nhave %v\nwant %v", n, want)
	}

	var id M4
	id.I()
	if m.Mul(&id, &n); m != n {
		t.Fatalf("M4.Mul: I ⋅ n\nhave %v\nwant %v", m, n)
	}
	if m.Mul(&n, &id); m != n {
		t.Fatalf("M4.Mul: n ⋅ I\nhave %v\nwant %v", m, n)
	}
}

func TestM4Invert(t *testing.T) {
	var tr, sc, m M4
	tr.Translate(2, 4, 8)
	sc.Scale(2, 4, 8)
	m.Mul(&tr, &sc)

	want := M4{{0.5}, {1: 0.25}, {2: 0.125}, {-1, -1, -1, 1}}
	var inv M4
	if inv.Invert(&m); inv != want {
		t.Fatalf("M4.Invert\nhave %v\nwant %v", inv, want)
	}

	c := m
	if c.Invert(&c); c != want {
		t.Fatalf("M4.Invert: aliased\nhave %v\nwant %v", c, want)
	}

	var id M4
	id.I()
	if m.Mul(&m, &inv); m != id {
		t.Fatalf("M4.Mul: aliased m ⋅ m⁻¹\nhave %v\nwant %v", m, id)
	}
}

func TestQ(t *testing.T) {
	half := Q{V: V3{0, 0, 1}}
	var q Q
	if q.Mul(&half, &half); q.V != (V3{}) || q.R != -1 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[0 0 0] -1}", q)
	}
	q.I()
	if q.Mul(&q, &half); q != half {
		t.Fatalf("Q.Mul: I ⋅ q\nhave %v\nwant %v", q, half)
	}
	if q.Norm(&Q{V: V3{1, 1, 1}, R: 1}); q != (Q{V: V3{0.5, 0.5, 0.5}, R: 0.5}) {
		t.Fatalf("Q.Norm\nhave %v\nwant {[0.5 0.5 0.5] 0.5}", q)
	}
	q.Rotate(math.Pi, &V3{0, 0, 1})
	if !near(q.V, half.V) || math.Abs(float64(q.R)) > 1e-6 {
		t.Fatalf("Q.Rotate\nhave %v\nwant %v", q, half)
	}
}

func TestRotateQ(t *testing.T) {
	var m M4
	q := Q{R: 1}
	if m.RotateQ(&q); m != (M4{{1}, {1: 1}, {2: 1}, {3: 1}}) {
		t.Fatalf("M4.RotateQ: identity\nhave %v", m)
	}

	q = Q{V: V3{0, 0, 1}}
	want := M4{{-1}, {1: -1}, {2: 1}, {3: 1}}
	if m.RotateQ(&q); m != want {
		t.Fatalf("M4.RotateQ: π around z\nhave %v\nwant %v", m, want)
	}

	q.Rotate(math.Pi/2, &V3{0, 0, 1})
	m.RotateQ(&q)
	var v V3
	if v.Transform(&m, &V3{1, 0, 0}); !near(v, V3{0, 1, 0}) {
		t.Fatalf("M4.RotateQ: π/2 around z\nhave %v\nwant [0 1 0]", v)
	}
	q.Rotate(math.Pi/2, &V3{1, 0, 0})
	m.RotateQ(&q)
	if v.Transform(&m, &V3{0, 1, 0}); !near(v, V3{0, 0, 1}) {
		t.Fatalf("M4.RotateQ: π/2 around x\nhave %v\nwant [0 0 1]", v)
	}
}

func TestTRS(t *testing.T) {
	pos := V3{1, 2, 3}
	rot := Q{V: V3{0, 0, 1}}
	scl := V3{2, 3, 4}

	var m M4
	m.TRS(&pos, &rot, &scl)

	var tr, r, s, want M4
	tr.Translate(1, 2, 3)
	r.RotateQ(&rot)
	s.Scale(2, 3, 4)
	want.Mul(&tr, &r)
	want.Mul(&want, &s)
	if m != want {
		t.Fatalf("M4.TRS\nhave %v\nwant %v", m, want)
	}

	var v V3
	if v.Transform(&m, &V3{1, 1, 1}); v != (V3{-1, -1, 7}) {
		t.Fatalf("TRS ⋅ v\nhave %v\nwant [-1 -1 7]", v)
	}
}

func TestBoxRotate(t *testing.T) {
	var m M4
	m.RotateQ(&Q{V: V3{0, 0, 1}})

	b := Box{Min: V3{0, 0, 0}, Max: V3{1, 2, 3}}
	var r Box
	r.Transform(&m, &b)
	if r.Min != (V3{-1, -2, 0}) || r.Max != (V3{0, 0, 3}) {
		t.Fatalf("Box.Transform: π around z\nhave %v\nwant {[-1 -2 0] [0 0 3]}", r)
	}

	var e, u Box
	e.Empty()
	if u.Union(&e, &r); u != r {
		t.Fatalf("Box.Union: empty ∪ r\nhave %v\nwant %v", u, r)
	}
	if u.Union(&u, &b); u.Min != (V3{-1, -2, 0}) || u.Max != (V3{1, 2, 3}) {
		t.Fatalf("Box.Union: aliased\nhave %v\nwant {[-1 -2 0] [1 2 3]}", u)
	}
}
