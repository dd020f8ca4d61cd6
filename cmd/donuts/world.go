// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/chewxy/math32"

	"github.com/gviegas/interact/anim"
	"github.com/gviegas/interact/config"
	"github.com/gviegas/interact/linear"
	"github.com/gviegas/interact/loop"
	"github.com/gviegas/interact/raycast"
	"github.com/gviegas/interact/scene"
)

var (
	cubeColor  = scene.Color{R: 90, G: 160, B: 255}
	donutColor = scene.Color{R: 230, G: 140, B: 180}
	hoverColor = scene.Color{R: 255, G: 230, B: 80}
	ringRadius = float32(3.2)
	spinAxis   = linear.V3{0, 1, 0}
)

// spinner is a node that rotates continuously around its
// own axis, plus an extra angle animated on click.
type spinner struct {
	node  *scene.Node
	axis  linear.V3
	speed float64
	angle float64
	spin  float64
	base  scene.Color
}

// Tick implements loop.Updater.
func (s *spinner) Tick(delta, _ float64) {
	s.angle += s.speed * delta
	var q, extra linear.Q
	q.Rotate(float32(s.angle), &s.axis)
	extra.Rotate(float32(s.spin), &spinAxis)
	s.node.Rotation.Mul(&extra, &q)
}

// world is the demo scene and its interaction wiring.
type world struct {
	cfg    config.Config
	log    *slog.Logger
	scene  *scene.Scene
	anims  *anim.Manager
	cube   *spinner
	donuts []*spinner
	// Bounding volumes follow the spinning transforms.
	refresh loop.Updater
	debug   bool
}

func newWorld(cfg config.Config, sc *scene.Scene, log *slog.Logger) *world {
	w := &world{cfg: cfg, log: log, scene: sc}

	cube := scene.NewNode()
	cube.Name = "cube"
	cube.Geometry = scene.NewBox(1.5, 1.5, 1.5)
	cube.Color = cubeColor
	w.cube = &spinner{
		node:  cube,
		axis:  linear.V3{0.6, 0.8, 0},
		speed: cfg.Scene.Speed,
		base:  cubeColor,
	}
	sc.Add(cube)

	torus := scene.NewTorus(0.55, 0.22, 12, 16)
	for i := range cfg.Scene.Donuts {
		// Offsets spread the donuts evenly along the ring.
		off := float32(i) * 2 * math32.Pi / float32(cfg.Scene.Donuts)
		s, c := math32.Sincos(off)
		n := scene.NewNode()
		n.Name = fmt.Sprintf("donut%d", i)
		n.Geometry = torus
		n.Color = donutColor
		n.Position = linear.V3{ringRadius * c, ringRadius * s, 0}
		d := &spinner{
			node:  n,
			axis:  linear.V3{c, s, 0},
			speed: cfg.Scene.Speed * 2,
			angle: float64(off),
			base:  donutColor,
		}
		d.Tick(0, 0)
		w.donuts = append(w.donuts, d)
		sc.Add(n)
	}
	w.cube.Tick(0, 0)
	return w
}

// wire registers the world's updaters with lp and its
// handlers with rc.
func (w *world) wire(lp *loop.Loop, rc *raycast.System) {
	w.anims = anim.NewManager(lp, w.log)
	lp.Register(w.cube)
	for _, d := range w.donuts {
		lp.Register(d)
	}
	w.refresh = loop.Func(func(_, _ float64) { rc.Refresh() })
	lp.Register(w.refresh)

	rc.Add(w.cube.node, w.hover(w.cube), raycast.Options{Kind: raycast.Both, Priority: 1})
	rc.Add(w.cube.node, func(hit *scene.Hit) { w.pulse() }, raycast.Options{Kind: raycast.Click})
	for _, d := range w.donuts {
		rc.Add(d.node, w.hover(d), raycast.Options{})
		rc.Add(d.node, w.spin(d), raycast.Options{Kind: raycast.Click})
	}
	if w.cfg.Debug {
		w.toggleDebug(rc)
	}
}

// hover highlights s while the pointer is over it.
func (w *world) hover(s *spinner) raycast.Handler {
	return func(hit *scene.Hit) {
		if hit == nil {
			s.node.Color = s.base
		} else {
			s.node.Color = hoverColor
		}
	}
}

// spin plays a full turn of s around the Y axis.
func (w *world) spin(s *spinner) raycast.Handler {
	return func(hit *scene.Hit) {
		name := "spin:" + s.node.Name
		from := s.spin
		w.anims.Create(name).To(w.cfg.Scene.Spin.Seconds(), anim.OutCubic, func(t float64) {
			s.spin = anim.Lerp(from, from+2*math.Pi, t)
		})
	}
}

// pulse scales the cube up and back down.
func (w *world) pulse() {
	n := w.cube.node
	half := w.cfg.Scene.Spin.Seconds() / 2
	set := func(k float64) { n.Scale = linear.V3{float32(k), float32(k), float32(k)} }
	w.anims.Create("pulse").
		To(half, anim.OutQuad, func(t float64) { set(anim.Lerp(1, 1.3, t)) }).
		To(half, anim.InOutSine, func(t float64) { set(anim.Lerp(1.3, 1, t)) })
}

// apply updates the world from a reloaded configuration.
// Settings that shape the scene take effect on restart.
func (w *world) apply(cfg config.Config, rc *raycast.System) {
	w.cube.speed = cfg.Scene.Speed
	for _, d := range w.donuts {
		d.speed = cfg.Scene.Speed * 2
	}
	w.cfg.Scene.Speed = cfg.Scene.Speed
	w.cfg.Scene.Spin = cfg.Scene.Spin
	if cfg.Debug != w.debug {
		w.toggleDebug(rc)
	}
}

// toggleDebug shows or hides the bounding volumes.
func (w *world) toggleDebug(rc *raycast.System) {
	w.debug = !w.debug
	if w.debug {
		rc.EnableDebug(w.scene)
	} else {
		rc.DisableDebug()
	}
}

// togglePause stops or restarts the loop along with every
// animation.
func (w *world) togglePause(lp *loop.Loop) {
	if lp.Running() {
		lp.Stop()
		w.anims.PauseAll()
	} else {
		w.anims.ResumeAll()
		lp.Start()
	}
}
