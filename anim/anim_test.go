// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package anim

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/interact/loop"
)

// registry is a Registrar that ticks its updaters by hand.
type registry struct{ us []loop.Updater }

func (r *registry) Register(u loop.Updater) { r.us = append(r.us, u) }

func (r *registry) Unregister(u loop.Updater) {
	for i, x := range r.us {
		if x == u {
			r.us = append(r.us[:i:i], r.us[i+1:]...)
			return
		}
	}
}

func (r *registry) tick(delta float64) {
	for _, u := range r.us {
		u.Tick(delta, 0)
	}
}

func TestEase(t *testing.T) {
	for _, e := range []Ease{Linear, InQuad, OutQuad, InOutQuad, OutCubic, InOutSine} {
		assert.InDelta(t, 0, e(0), 1e-12)
		assert.InDelta(t, 1, e(1), 1e-12)
	}
	assert.InDelta(t, 0.5, InOutQuad(0.5), 1e-12)
	assert.Equal(t, 2.5, Lerp(2, 3, 0.5))
}

func TestTimeline(t *testing.T) {
	var a, b []float64
	var ends int
	tl := NewTimeline().
		To(1, nil, func(p float64) { a = append(a, p) }).
		To(2, InQuad, func(p float64) { b = append(b, p) }).
		OnEnd(func() { ends++ })
	assert.Equal(t, 3.0, tl.Duration())

	tl.Tick(0.5, 0)
	assert.Equal(t, []float64{0.5}, a)
	assert.Empty(t, b)
	assert.InDelta(t, 0.5/3, tl.Progress(), 1e-12)

	// Crossing a step boundary completes the earlier step.
	tl.Tick(1.5, 0)
	assert.Equal(t, []float64{0.5, 1}, a)
	assert.Equal(t, []float64{0.25}, b)

	tl.Pause()
	tl.Tick(1, 0)
	assert.Len(t, b, 1)
	tl.Resume()

	tl.Tick(5, 0)
	assert.Equal(t, []float64{0.25, 1}, b)
	assert.True(t, tl.Ended())
	assert.Equal(t, 1.0, tl.Progress())
	assert.Equal(t, 1, ends)

	tl.Tick(1, 0)
	assert.Len(t, a, 2)
	assert.Equal(t, 1, ends)
}

func TestTimelineThenKill(t *testing.T) {
	var calls int
	tl := NewTimeline().To(1, nil, nil).Then(func() { calls++ })
	tl.Tick(0.5, 0)
	assert.Zero(t, calls)
	tl.Tick(0.5, 0)
	assert.Equal(t, 1, calls)

	var n int
	k := NewTimeline().To(1, nil, func(float64) { n++ }).OnEnd(func() { t.Error("OnEnd: killed timeline ended") })
	k.Tick(0.2, 0)
	k.Kill()
	k.Tick(1, 0)
	assert.Equal(t, 1, n)
	assert.True(t, k.Killed())
	assert.False(t, k.Ended())
}

func TestManager(t *testing.T) {
	reg := new(registry)
	m := NewManager(reg, nil)

	var created []*Timeline
	m.OnCreated("spin", func(tl *Timeline) { created = append(created, tl) })
	assert.Empty(t, created)

	spin := m.Create("spin").To(1, nil, nil)
	require.Len(t, created, 1)
	assert.Same(t, spin, created[0])
	assert.Equal(t, "spin", spin.Name())
	assert.Len(t, reg.us, 1)

	// Listeners are called immediately once the timeline exists.
	var late *Timeline
	m.OnCreated("spin", func(tl *Timeline) { late = tl })
	assert.Same(t, spin, late)

	// Re-creating replaces and kills the previous timeline.
	again := m.Create("spin")
	assert.True(t, spin.Killed())
	assert.Len(t, created, 2)
	assert.Len(t, reg.us, 1)
	have, ok := m.Get("spin")
	assert.True(t, ok)
	assert.Same(t, again, have)

	fade := m.Create("fade").To(2, OutQuad, nil)
	assert.Equal(t, []string{"fade", "spin"}, m.All())

	m.PauseAll()
	reg.tick(1)
	p, ok := m.Progress("fade")
	assert.True(t, ok)
	assert.Zero(t, p)
	m.ResumeAll()
	reg.tick(1)
	p, _ = m.Progress("fade")
	assert.Equal(t, 0.5, p)
	m.Debug()

	// Ended timelines are unscheduled but kept.
	reg.tick(1)
	assert.True(t, fade.Ended())
	assert.Empty(t, reg.us)
	assert.Equal(t, 2, m.Len())

	_, ok = m.Progress("none")
	assert.False(t, ok)
	m.Kill("none")
	m.KillAll()
	assert.Zero(t, m.Len())
	assert.True(t, fade.Killed())
}

func TestManagerDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	m := NewManager(&registry{}, log)
	m.Create("spin").To(4, Linear, nil)
	m.Debug()
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "name=spin")
	assert.Contains(t, out, "paused=false")
}
