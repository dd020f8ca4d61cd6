// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package anim implements named, time-based animation
// timelines that are advanced by the frame loop.
package anim

type step struct {
	start float64
	dur   float64
	ease  Ease
	apply func(t float64)
	done  bool
}

// Timeline is a sequence of tweens played one after the
// other. It implements loop.Updater.
// The zero value is an empty timeline ready for use.
type Timeline struct {
	name   string
	steps  []step
	total  float64
	pos    float64
	paused bool
	killed bool
	ended  bool
	onEnd  []func()
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline { return new(Timeline) }

// Name returns the name under which t was created by a
// Manager, or "" if none.
func (t *Timeline) Name() string { return t.name }

// To appends a step that lasts for dur seconds, calling
// apply with the eased progress of the step on every
// tick while the step is playing. The last call of a step
// always receives ease(1).
// A nil ease means Linear. A negative dur is treated as 0.
func (t *Timeline) To(dur float64, ease Ease, apply func(t float64)) *Timeline {
	if ease == nil {
		ease = Linear
	}
	dur = max(dur, 0)
	t.steps = append(t.steps, step{
		start: t.total,
		dur:   dur,
		ease:  ease,
		apply: apply,
	})
	t.total += dur
	t.ended = false
	return t
}

// Then appends a step that calls f once, when the
// preceding steps have completed.
func (t *Timeline) Then(f func()) *Timeline {
	return t.To(0, nil, func(float64) { f() })
}

// OnEnd registers f to be called when t completes.
func (t *Timeline) OnEnd(f func()) *Timeline {
	t.onEnd = append(t.onEnd, f)
	return t
}

// Tick advances t by delta seconds.
// It has no effect while t is paused, killed or complete.
func (t *Timeline) Tick(delta, _ float64) {
	if t.paused || t.killed || t.ended {
		return
	}
	t.pos = min(t.pos+max(delta, 0), t.total)
	for i := range t.steps {
		s := &t.steps[i]
		if s.done {
			continue
		}
		if s.start > t.pos {
			break
		}
		p := 1.0
		if s.dur > 0 {
			p = min((t.pos-s.start)/s.dur, 1)
		}
		if p >= 1 {
			s.done = true
			p = 1
		}
		if s.apply != nil {
			s.apply(s.ease(p))
		}
		if t.killed {
			return
		}
	}
	if t.pos >= t.total {
		t.ended = true
		for _, f := range t.onEnd {
			f()
		}
	}
}

// Duration returns the length of t in seconds.
func (t *Timeline) Duration() float64 { return t.total }

// Progress returns the position of t as a fraction of its
// duration, in [0, 1].
func (t *Timeline) Progress() float64 {
	if t.total == 0 {
		if t.ended {
			return 1
		}
		return 0
	}
	return t.pos / t.total
}

// Pause stops t from advancing.
func (t *Timeline) Pause() { t.paused = true }

// Resume undoes Pause.
func (t *Timeline) Resume() { t.paused = false }

// Paused returns whether t is paused.
func (t *Timeline) Paused() bool { return t.paused }

// Kill stops t permanently.
// Its OnEnd functions are not called.
func (t *Timeline) Kill() { t.killed = true }

// Killed returns whether Kill was called.
func (t *Timeline) Killed() bool { return t.killed }

// Ended returns whether t has played to completion.
func (t *Timeline) Ended() bool { return t.ended }
