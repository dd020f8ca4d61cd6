// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package raycast implements pointer interaction with scene
// objects: it casts a ray from the camera through the
// pointer and decides which tracked object, if any, is
// hovered or clicked.
package raycast

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/gviegas/interact/host"
	"github.com/gviegas/interact/internal/slot"
	"github.com/gviegas/interact/linear"
	"github.com/gviegas/interact/scene"
)

func newErr(s string) error { return errors.New("raycast: " + s) }

// DefaultThrottle is the minimum interval between processed
// pointer motion events. Events arriving within the
// interval are dropped.
const DefaultThrottle = 16 * time.Millisecond

// ID identifies a tracked object.
type ID int

// Nil represents an invalid ID.
const Nil ID = -1

// Camera is the interface that generates rays from
// normalized device coordinates.
type Camera interface {
	Ray(x, y float32) linear.Ray
}

// Config is the configuration of a System.
type Config struct {
	// Camera generates pointer rays. It is required.
	Camera Camera
	// Source delivers pointer input. It is required.
	Source host.Source
	// Throttle is the minimum interval between processed
	// pointer motion events. Zero means DefaultThrottle
	// and a negative value disables throttling.
	Throttle time.Duration
	// Far is the maximum distance of a hit from the ray
	// origin. Farther hits are ignored. Zero or less means
	// no limit.
	Far float32
	// Intersect is the precise intersection test.
	// Defaults to (*scene.Node).Intersect.
	Intersect func(n *scene.Node, r linear.Ray) (scene.Hit, bool)
	// Bounds computes the world-space bounding volume of
	// an object. Defaults to (*scene.Node).BoundingBox.
	Bounds func(n *scene.Node) linear.Box
	// Defaults to slog.Default().
	Logger *slog.Logger
}

type entry struct {
	node     *scene.Node
	handlers []handler
	box      linear.Box
	// Registration order, used as the last tie-break.
	seq    uint64
	helper *scene.Node
}

// eligible returns whether e has an enabled handler for
// events of kind ev, and the highest priority among such
// handlers.
func (e *entry) eligible(ev Kind) (prio int, ok bool) {
	for i := range e.handlers {
		h := &e.handlers[i]
		if h.opts.Disabled || !h.opts.Kind.accepts(ev) {
			continue
		}
		if !ok || h.opts.Priority > prio {
			prio = h.opts.Priority
		}
		ok = true
	}
	return
}

// System is the pointer interaction system.
// Its methods must be called from the host's goroutine.
type System struct {
	cam       Camera
	src       host.Source
	intersect func(*scene.Node, linear.Ray) (scene.Hit, bool)
	bounds    func(*scene.Node) linear.Box
	log       *slog.Logger
	lim       *rate.Limiter
	far       float32

	objs    slot.Map[ID, entry]
	ids     map[*scene.Node]ID
	seq     uint64
	hovered ID
	pointer [2]float32

	cancel   []func()
	debug    *scene.Scene
	disposed bool
}

// New creates a System and subscribes it to cfg.Source.
func New(cfg Config) (*System, error) {
	switch {
	case cfg.Camera == nil:
		return nil, newErr("nil Camera in call to New")
	case cfg.Source == nil:
		return nil, newErr("nil host.Source in call to New")
	}
	s := &System{
		cam:       cfg.Camera,
		src:       cfg.Source,
		intersect: cfg.Intersect,
		bounds:    cfg.Bounds,
		log:       cfg.Logger,
		far:       cfg.Far,
		ids:       make(map[*scene.Node]ID),
		hovered:   Nil,
	}
	if s.intersect == nil {
		s.intersect = (*scene.Node).Intersect
	}
	if s.bounds == nil {
		s.bounds = (*scene.Node).BoundingBox
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "raycast")
	switch {
	case cfg.Throttle == 0:
		s.lim = rate.NewLimiter(rate.Every(DefaultThrottle), 1)
	case cfg.Throttle > 0:
		s.lim = rate.NewLimiter(rate.Every(cfg.Throttle), 1)
	}
	s.cancel = []func(){
		s.src.OnPointerMove(s.onMove),
		s.src.OnClick(s.onClick),
	}
	return s, nil
}

// Add tracks n, calling h for the events selected by opts.
// If n is tracked already, h is appended to its handlers
// and the existing ID is returned. Otherwise, n's bounding
// volume is computed from its current transform.
// A nil n or h is ignored and Nil is returned.
func (s *System) Add(n *scene.Node, h Handler, opts Options) ID {
	if n == nil || h == nil {
		return Nil
	}
	if id, ok := s.ids[n]; ok {
		e := s.objs.Get(id)
		e.handlers = append(e.handlers, handler{h, opts})
		s.log.Debug("handler added", "object", n.Name, "id", id, "kind", opts.Kind, "handlers", len(e.handlers))
		return id
	}
	s.seq++
	id := s.objs.Insert(entry{
		node:     n,
		handlers: []handler{{h, opts}},
		box:      s.bounds(n),
		seq:      s.seq,
	})
	s.ids[n] = id
	if s.debug != nil {
		s.addHelper(s.objs.Get(id))
	}
	s.log.Debug("object tracked", "object", n.Name, "id", id, "kind", opts.Kind)
	return id
}

// AddAll calls Add for each element of ns.
// It returns the ID of each element, in order.
func (s *System) AddAll(ns []*scene.Node, h Handler, opts Options) []ID {
	ids := make([]ID, len(ns))
	for i, n := range ns {
		ids[i] = s.Add(n, h, opts)
	}
	return ids
}

// Remove stops tracking n, discarding all of its handlers.
// If n is hovered, its hover handlers are notified with
// nil before it is removed.
// Removing an object that is not tracked has no effect.
func (s *System) Remove(n *scene.Node) {
	id, ok := s.ids[n]
	if !ok {
		return
	}
	if s.hovered == id {
		s.hovered = Nil
		s.notify(id, Hover, nil)
		// A handler may have removed n already.
		if cur, ok := s.ids[n]; !ok || cur != id {
			return
		}
	}
	delete(s.ids, n)
	if e, ok := s.objs.Remove(id); ok && e.helper != nil {
		e.helper.Remove()
	}
	s.log.Debug("object untracked", "object", n.Name, "id", id)
}

// RemoveAll calls Remove for each element of ns.
func (s *System) RemoveAll(ns []*scene.Node) {
	for _, n := range ns {
		s.Remove(n)
	}
}

// Lookup returns the ID of n, if tracked.
func (s *System) Lookup(n *scene.Node) (ID, bool) {
	id, ok := s.ids[n]
	return id, ok
}

// Object returns the object identified by id, or nil if
// id is not valid.
func (s *System) Object(id ID) *scene.Node {
	if e := s.objs.Get(id); e != nil {
		return e.node
	}
	return nil
}

// Len returns the number of tracked objects.
func (s *System) Len() int { return s.objs.Len() }

// Enable enables or disables every handler of n.
// It has no effect if n is not tracked.
func (s *System) Enable(n *scene.Node, enabled bool) {
	id, ok := s.ids[n]
	if !ok {
		return
	}
	e := s.objs.Get(id)
	for i := range e.handlers {
		e.handlers[i].opts.Disabled = !enabled
	}
}

// Refresh recomputes the bounding volume of every tracked
// object from its current transform.
// Bounding volumes are not kept in sync with transforms,
// so this must be called after objects move.
func (s *System) Refresh() {
	ents := s.objs.Entries()
	for i := range ents {
		e := &ents[i].Data
		e.box = s.bounds(e.node)
		if e.helper != nil {
			s.updateHelper(e)
		}
	}
}

// Pointer returns the last pointer position, in
// normalized device coordinates. It follows every motion
// event, including those dropped by the throttle.
func (s *System) Pointer() (x, y float32) { return s.pointer[0], s.pointer[1] }

// Hovered returns the object currently hovered, or nil.
func (s *System) Hovered() *scene.Node { return s.Object(s.hovered) }

// Dispose unsubscribes s from its host.Source and clears
// all tracked state. No notifications are delivered
// afterwards.
// Calling Dispose more than once has no effect.
func (s *System) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, f := range s.cancel {
		f()
	}
	s.cancel = nil
	for _, e := range s.objs.Entries() {
		if e.Data.helper != nil {
			e.Data.helper.Remove()
		}
	}
	s.objs.Clear()
	clear(s.ids)
	s.hovered = Nil
	s.debug = nil
	s.log.Info("disposed")
}

// Disposed returns whether Dispose has been called.
func (s *System) Disposed() bool { return s.disposed }

// point converts a surface position to normalized device
// coordinates and records it as the pointer position.
// It fails if the surface has no area.
func (s *System) point(x, y float64) bool {
	w, h := s.src.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	s.pointer[0] = float32(x/float64(w)*2 - 1)
	s.pointer[1] = float32(-(y/float64(h))*2 + 1)
	return true
}

// ray generates the ray through the pointer position.
func (s *System) ray() linear.Ray { return s.cam.Ray(s.pointer[0], s.pointer[1]) }

func (s *System) onMove(x, y float64, at time.Time) {
	if s.disposed || !s.point(x, y) {
		return
	}
	if s.lim != nil && !s.lim.AllowN(at, 1) {
		return
	}
	ray := s.ray()
	hit, target := s.pick(&ray, Hover)
	if target != s.hovered {
		prev := s.hovered
		tnode := s.Object(target)
		s.hovered = Nil
		if prev != Nil {
			s.notify(prev, Hover, nil)
		}
		// Exit handlers may have removed the target or
		// reused its ID for another node.
		if s.disposed || s.Object(target) != tnode {
			return
		}
		s.hovered = target
		s.log.Debug("hover changed", "from", s.name(prev), "to", s.name(target))
	}
	if target != Nil && s.hovered == target {
		s.notify(target, Hover, &hit)
	}
}

func (s *System) onClick(x, y float64) {
	if s.disposed || !s.point(x, y) {
		return
	}
	ray := s.ray()
	if hit, target := s.pick(&ray, Click); target != Nil {
		s.notify(target, Click, &hit)
	}
}

// pick selects the object that an event of kind ev
// targets. Only visible objects having an enabled handler
// for ev and whose bounding volume intersects ray are
// tested precisely. Hits beyond the far distance are
// ignored. The nearest hit wins; ties go to the
// highest priority and then to the earliest registration.
func (s *System) pick(ray *linear.Ray, ev Kind) (best scene.Hit, id ID) {
	id = Nil
	var prio int
	var seq uint64
	for _, ent := range s.objs.Entries() {
		e := &ent.Data
		p, ok := e.eligible(ev)
		if !ok || !e.node.Visible {
			continue
		}
		if _, ok := ray.IntersectBox(&e.box); !ok {
			continue
		}
		hit, ok := s.intersect(e.node, *ray)
		if !ok || (s.far > 0 && hit.Distance > s.far) {
			continue
		}
		switch {
		case id == Nil,
			hit.Distance < best.Distance,
			hit.Distance == best.Distance && p > prio,
			hit.Distance == best.Distance && p == prio && e.seq < seq:
			best, id, prio, seq = hit, ent.ID, p, e.seq
		}
	}
	return
}

// notify calls the enabled handlers of id that accept
// events of kind ev. A nil hit is a hover exit.
// Delivery of a hover or click stops once a handler
// removes the object or, for hover, once it is no longer
// the hovered object. An exit reaches every handler.
func (s *System) notify(id ID, ev Kind, hit *scene.Hit) {
	e := s.objs.Get(id)
	if e == nil {
		return
	}
	node := e.node
	// Handlers may add or remove objects, which
	// invalidates e, so iterate over a copy of the
	// slice header.
	hs := e.handlers
	for i := range hs {
		if s.disposed {
			return
		}
		if hit != nil {
			if cur := s.objs.Get(id); cur == nil || cur.node != node {
				return
			}
			if ev == Hover && s.hovered != id {
				return
			}
		}
		if !hs[i].opts.Disabled && hs[i].opts.Kind.accepts(ev) {
			hs[i].fn(hit)
		}
	}
}

func (s *System) name(id ID) string {
	if n := s.Object(id); n != nil {
		return n.Name
	}
	return "<nil>"
}
