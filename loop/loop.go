// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package loop implements the frame scheduler: it advances
// a clock, updates every registered Updater and renders the
// scene once per display refresh.
package loop

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gviegas/interact/host"
	"github.com/gviegas/interact/scene"
)

func newErr(s string) error { return errors.New("loop: " + s) }

// Updater is the interface of values updated once per frame.
// delta is the time since the previous frame and elapsed the
// total running time, both in seconds.
// Updaters are identified by equality, so implementations
// must be comparable (pointer types are).
type Updater interface {
	Tick(delta, elapsed float64)
}

// Func wraps f in an Updater.
// Every call returns a distinct Updater, so the result must
// be kept in order to unregister it later.
func Func(f func(delta, elapsed float64)) Updater { return &funcUpdater{f} }

type funcUpdater struct {
	f func(float64, float64)
}

func (u *funcUpdater) Tick(delta, elapsed float64) { u.f(delta, elapsed) }

// Renderer is the interface that renders one frame of a
// scene as seen by a camera.
type Renderer interface {
	Render(s *scene.Scene, c *scene.Camera)
}

// Config is the configuration of a Loop.
type Config struct {
	// Driver provides the display-refresh signal.
	// It is required.
	Driver host.Driver
	// Renderer is called at the end of every tick.
	// It may be nil.
	Renderer Renderer
	Scene    *scene.Scene
	Camera   *scene.Camera
	// Now is the time source of the loop's clock.
	// Defaults to time.Now.
	Now func() time.Time
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Loop is the frame scheduler.
// Its methods must be called from the host's goroutine.
type Loop struct {
	drv   host.Driver
	rend  Renderer
	scn   *scene.Scene
	cam   *scene.Camera
	log   *slog.Logger
	clock *Clock

	running bool
	prev    float64
	frames  uint64

	// Registered updaters, in registration order.
	// set mirrors the contents of list.
	list []Updater
	set  map[Updater]struct{}
	snap []Updater
}

// New creates a stopped loop.
func New(cfg Config) (*Loop, error) {
	if cfg.Driver == nil {
		return nil, newErr("nil host.Driver in call to New")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Loop{
		drv:   cfg.Driver,
		rend:  cfg.Renderer,
		scn:   cfg.Scene,
		cam:   cfg.Camera,
		log:   log.With("component", "loop"),
		clock: NewClock(cfg.Now),
		set:   make(map[Updater]struct{}),
	}, nil
}

// Register adds u to the set of updaters.
// Registering u again has no effect.
// If called during a tick, u is first updated on the
// next tick.
func (l *Loop) Register(u Updater) {
	if _, ok := l.set[u]; ok {
		return
	}
	l.set[u] = struct{}{}
	l.list = append(l.list, u)
	l.log.Debug("updater registered", "count", len(l.list))
}

// RegisterAll calls Register for each element of us.
func (l *Loop) RegisterAll(us []Updater) {
	for _, u := range us {
		l.Register(u)
	}
}

// Unregister removes u from the set of updaters.
// Unregistering an updater that is not registered has
// no effect.
// If called during a tick, u may still be updated in
// that tick.
func (l *Loop) Unregister(u Updater) {
	if _, ok := l.set[u]; !ok {
		return
	}
	delete(l.set, u)
	for i := range l.list {
		if l.list[i] == u {
			l.list = append(l.list[:i:i], l.list[i+1:]...)
			break
		}
	}
	l.log.Debug("updater unregistered", "count", len(l.list))
}

// UnregisterAll calls Unregister for each element of us.
func (l *Loop) UnregisterAll(us []Updater) {
	for _, u := range us {
		l.Unregister(u)
	}
}

// Registered returns whether u is registered.
func (l *Loop) Registered(u Updater) bool {
	_, ok := l.set[u]
	return ok
}

// Len returns the number of registered updaters.
func (l *Loop) Len() int { return len(l.list) }

// Start starts the clock and requests ticks from the
// driver. It does nothing if l is running.
// The first tick after Start reports a delta measured
// from the call to Start, so stopping and starting again
// does not produce a jump in delta.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.clock.Start()
	l.prev = l.clock.Elapsed()
	l.drv.SetAnimationLoop(l.tick)
	l.log.Info("started", "elapsed", l.prev)
}

// Stop freezes the clock and stops requesting ticks.
// It does nothing if l is stopped.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.clock.Stop()
	l.drv.SetAnimationLoop(nil)
	l.log.Info("stopped", "elapsed", l.clock.Elapsed(), "frames", l.frames)
}

// Running returns whether l is running.
func (l *Loop) Running() bool { return l.running }

// Elapsed returns the elapsed running time, in seconds.
func (l *Loop) Elapsed() float64 { return l.clock.Elapsed() }

// Frames returns the number of ticks executed so far.
func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) tick() {
	elapsed := l.clock.Elapsed()
	delta := elapsed - l.prev
	l.prev = elapsed
	l.frames++

	// Updaters may (un)register during the tick, so iterate
	// over a copy of the list.
	l.snap = append(l.snap[:0], l.list...)
	for _, u := range l.snap {
		u.Tick(delta, elapsed)
	}
	clear(l.snap)

	if l.rend != nil {
		l.rend.Render(l.scn, l.cam)
	}
}
