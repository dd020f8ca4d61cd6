// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package host defines the environment that drives the
// frame loop and delivers pointer input.
// Hosts run every callback on a single goroutine: frame
// callbacks and input listeners never execute
// concurrently with one another.
package host

import (
	"time"
)

// Driver is the interface that defines a display-refresh
// signal.
type Driver interface {
	// SetAnimationLoop sets the function to call once per
	// display refresh. A nil f stops the calls.
	SetAnimationLoop(f func())
}

// Source is the interface that defines a provider of
// pointer input over a rectangular surface.
// Positions are given in surface units, with the origin
// at the top-left corner and Y growing downwards.
type Source interface {
	// OnPointerMove registers f to be called whenever the
	// pointer changes position. at is the time of the
	// event. The returned function unregisters f.
	OnPointerMove(f func(x, y float64, at time.Time)) (cancel func())

	// OnClick registers f to be called whenever the
	// primary button is clicked. The returned function
	// unregisters f.
	OnClick(f func(x, y float64)) (cancel func())

	// Size returns the extent of the surface.
	Size() (width, height int)
}

// Button is the type of pointer buttons.
type Button int

// Pointer buttons.
const (
	BtnUnknown Button = iota
	BtnLeft
	BtnRight
	BtnMiddle
)

// Listeners is an ordered list of callbacks of type F.
// The zero value is an empty list ready for use.
type Listeners[F any] struct {
	next int
	fs   []listener[F]
}

type listener[F any] struct {
	id int
	f  F
}

// Add appends f to the list. The returned function
// removes it; calling it more than once has no effect.
func (l *Listeners[F]) Add(f F) (cancel func()) {
	id := l.next
	l.next++
	l.fs = append(l.fs, listener[F]{id, f})
	return func() {
		for i := range l.fs {
			if l.fs[i].id == id {
				l.fs = append(l.fs[:i:i], l.fs[i+1:]...)
				return
			}
		}
	}
}

// Each calls f for every callback in the list, in the
// order they were added.
// Callbacks added or removed while Each runs take effect
// on the next call.
func (l *Listeners[F]) Each(f func(F)) {
	fs := l.fs
	for i := range fs {
		f(fs[i].f)
	}
}

// Len returns the number of callbacks in the list.
func (l *Listeners[_]) Len() int { return len(l.fs) }
