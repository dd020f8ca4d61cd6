// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package headless implements a host that is pumped by
// hand, for tests and offline runs.
package headless

import (
	"time"

	"github.com/gviegas/interact/host"
	"github.com/gviegas/interact/scene"
)

// Host is a manually driven host.Driver and host.Source.
// It must be used from a single goroutine.
type Host struct {
	width  int
	height int
	frame  func()
	moves  host.Listeners[func(x, y float64, at time.Time)]
	clicks host.Listeners[func(x, y float64)]
}

// New creates a host whose surface has the given size.
func New(width, height int) *Host {
	return &Host{width: width, height: height}
}

// SetAnimationLoop implements host.Driver.
func (h *Host) SetAnimationLoop(f func()) { h.frame = f }

// Animating returns whether an animation loop is set.
func (h *Host) Animating() bool { return h.frame != nil }

// Frame signals one display refresh.
// It reports whether an animation loop was called.
func (h *Host) Frame() bool {
	if h.frame == nil {
		return false
	}
	h.frame()
	return true
}

// OnPointerMove implements host.Source.
func (h *Host) OnPointerMove(f func(x, y float64, at time.Time)) func() {
	return h.moves.Add(f)
}

// OnClick implements host.Source.
func (h *Host) OnClick(f func(x, y float64)) func() {
	return h.clicks.Add(f)
}

// Size implements host.Source.
func (h *Host) Size() (int, int) { return h.width, h.height }

// Resize changes the size of the surface.
func (h *Host) Resize(width, height int) {
	h.width = width
	h.height = height
}

// Move delivers a pointer motion event.
func (h *Host) Move(x, y float64, at time.Time) {
	h.moves.Each(func(f func(float64, float64, time.Time)) { f(x, y, at) })
}

// Click delivers a primary button click.
func (h *Host) Click(x, y float64) {
	h.clicks.Each(func(f func(float64, float64)) { f(x, y) })
}

// Listening returns the number of registered motion and
// click listeners.
func (h *Host) Listening() (moves, clicks int) {
	return h.moves.Len(), h.clicks.Len()
}

// Recorder is a renderer that counts frames.
type Recorder struct {
	Frames int
	// Last scene and camera rendered.
	Scene  *scene.Scene
	Camera *scene.Camera
}

// Render records a frame.
func (r *Recorder) Render(s *scene.Scene, c *scene.Camera) {
	r.Frames++
	r.Scene = s
	r.Camera = c
}
