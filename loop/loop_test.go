// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package loop

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/interact/guard"
	"github.com/gviegas/interact/host/headless"
	"github.com/gviegas/interact/scene"
)

// fakeTime is a manually advanced time source.
type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(sec float64) {
	f.t = f.t.Add(time.Duration(sec * float64(time.Second)))
}

// countingDriver counts SetAnimationLoop calls.
type countingDriver struct {
	*headless.Host
	sets, clears int
}

func (d *countingDriver) SetAnimationLoop(f func()) {
	if f == nil {
		d.clears++
	} else {
		d.sets++
	}
	d.Host.SetAnimationLoop(f)
}

type call struct{ delta, elapsed float64 }

type recorder struct{ calls []call }

func (r *recorder) Tick(delta, elapsed float64) {
	r.calls = append(r.calls, call{delta, elapsed})
}

func newTestLoop(t *testing.T) (*Loop, *countingDriver, *fakeTime, *headless.Recorder) {
	t.Helper()
	drv := &countingDriver{Host: headless.New(80, 24)}
	ft := &fakeTime{t: time.Unix(1000, 0)}
	rend := &headless.Recorder{}
	l, err := New(Config{
		Driver:   drv,
		Renderer: rend,
		Scene:    scene.New(),
		Camera:   scene.NewCamera(45, 1, 100),
		Now:      ft.now,
	})
	require.NoError(t, err)
	return l, drv, ft, rend
}

func assertCalls(t *testing.T, want, have []call) {
	t.Helper()
	require.Len(t, have, len(want))
	for i := range want {
		assert.InDelta(t, want[i].delta, have[i].delta, 1e-9, "delta of call %d", i)
		assert.InDelta(t, want[i].elapsed, have[i].elapsed, 1e-9, "elapsed of call %d", i)
	}
}

func TestNewRequiresDriver(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestTicks(t *testing.T) {
	l, drv, ft, rend := newTestLoop(t)
	r1, r2 := &recorder{}, &recorder{}
	l.RegisterAll([]Updater{r1, r2})

	assert.False(t, drv.Frame(), "no ticks before Start")
	l.Start()
	for _, d := range []float64{0.4, 0.3, 0.3} {
		ft.advance(d)
		require.True(t, drv.Frame())
	}
	want := []call{{0.4, 0.4}, {0.3, 0.7}, {0.3, 1.0}}
	assertCalls(t, want, r1.calls)
	assertCalls(t, want, r2.calls)
	assert.Equal(t, 3, rend.Frames)
	assert.Equal(t, uint64(3), l.Frames())
	assert.NotNil(t, rend.Scene)
	assert.NotNil(t, rend.Camera)
}

func TestStartStopIdempotent(t *testing.T) {
	l, drv, _, _ := newTestLoop(t)
	l.Start()
	l.Start()
	assert.True(t, l.Running())
	assert.Equal(t, 1, drv.sets)
	l.Stop()
	l.Stop()
	assert.False(t, l.Running())
	assert.Equal(t, 1, drv.clears)
	assert.False(t, drv.Animating())
}

func TestResumeWithoutJump(t *testing.T) {
	l, drv, ft, _ := newTestLoop(t)
	r := &recorder{}
	l.Register(r)

	l.Start()
	ft.advance(1)
	drv.Frame()
	ft.advance(0.5)
	l.Stop()
	ft.advance(10)
	assert.InDelta(t, 1.5, l.Elapsed(), 1e-9, "clock is frozen while stopped")
	assert.False(t, drv.Frame())

	l.Start()
	ft.advance(0.5)
	drv.Frame()
	assertCalls(t, []call{{1, 1}, {0.5, 2}}, r.calls)
}

func TestRegisterSet(t *testing.T) {
	l, drv, ft, _ := newTestLoop(t)
	r := &recorder{}
	l.Register(r)
	l.Register(r)
	assert.Equal(t, 1, l.Len())

	f := Func(func(float64, float64) {})
	l.Register(f)
	l.Unregister(f)
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Registered(f))
	assert.True(t, l.Registered(r))

	// Unknown updaters are ignored.
	l.Unregister(&recorder{})
	l.UnregisterAll([]Updater{Func(func(float64, float64) {})})
	assert.Equal(t, 1, l.Len())

	l.Start()
	ft.advance(0.1)
	drv.Frame()
	assert.Len(t, r.calls, 1, "registered twice, called once")

	l.UnregisterAll([]Updater{r})
	ft.advance(0.1)
	drv.Frame()
	assert.Len(t, r.calls, 1)
	assert.Zero(t, l.Len())
}

func TestMutationDuringTick(t *testing.T) {
	l, drv, ft, _ := newTestLoop(t)
	late := &recorder{}
	removed := &recorder{}
	other := &recorder{}
	var mutator Updater
	mutator = Func(func(float64, float64) {
		l.Register(late)
		l.Unregister(removed)
		l.Unregister(mutator)
	})
	l.RegisterAll([]Updater{mutator, removed, other})

	l.Start()
	ft.advance(0.1)
	drv.Frame()
	assert.Len(t, removed.calls, 1, "removal takes effect on the next tick")
	assert.Len(t, other.calls, 1)
	assert.Empty(t, late.calls, "addition takes effect on the next tick")

	ft.advance(0.1)
	drv.Frame()
	assert.Len(t, removed.calls, 1)
	assert.Len(t, other.calls, 2)
	assert.Len(t, late.calls, 1)
	assert.Equal(t, 2, l.Len())
}

func TestInstance(t *testing.T) {
	Teardown()
	defer Teardown()

	_, err := Instance()
	require.Error(t, err)
	assert.True(t, errors.Is(err, guard.ErrUninitialized))
	assert.PanicsWithError(t, "loop: used before initialization", func() { Must() })

	_, err = Create(Config{})
	assert.Error(t, err, "invalid config")
	_, err = Instance()
	assert.ErrorIs(t, err, guard.ErrUninitialized)

	first, err := Create(Config{Driver: headless.New(1, 1)})
	require.NoError(t, err)
	second, err := Create(Config{Driver: headless.New(2, 2)})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, Must())

	first.Start()
	Teardown()
	assert.False(t, first.Running())
	_, err = Instance()
	assert.ErrorIs(t, err, guard.ErrUninitialized)
}
