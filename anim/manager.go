// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package anim

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/gviegas/interact/loop"
)

// Registrar is the interface that schedules timelines for
// per-frame updates. *loop.Loop implements it.
type Registrar interface {
	Register(loop.Updater)
	Unregister(loop.Updater)
}

// Manager is a registry of named timelines.
// Timelines created through it are registered with the
// Registrar and unregistered when they end or are killed.
// It must be used from the loop's goroutine.
type Manager struct {
	reg       Registrar
	log       *slog.Logger
	timelines map[string]*Timeline
	listeners map[string][]func(*Timeline)
}

// NewManager creates a Manager.
// A nil log means slog.Default().
func NewManager(reg Registrar, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		reg:       reg,
		log:       log.With("component", "anim"),
		timelines: make(map[string]*Timeline),
		listeners: make(map[string][]func(*Timeline)),
	}
}

// Create creates an empty timeline named name and
// schedules it. A timeline previously created with the
// same name is killed and replaced.
// Functions waiting on OnCreated for name are called with
// the new timeline.
func (m *Manager) Create(name string) *Timeline {
	m.Kill(name)
	t := &Timeline{name: name}
	t.OnEnd(func() {
		m.reg.Unregister(t)
		m.log.Debug("timeline ended", "name", name)
	})
	m.timelines[name] = t
	m.reg.Register(t)
	m.log.Debug("timeline created", "name", name)
	for _, f := range m.listeners[name] {
		f(t)
	}
	return t
}

// Get returns the timeline named name.
func (m *Manager) Get(name string) (*Timeline, bool) {
	t, ok := m.timelines[name]
	return t, ok
}

// Kill kills and removes the timeline named name.
// It has no effect if there is no such timeline.
func (m *Manager) Kill(name string) {
	t, ok := m.timelines[name]
	if !ok {
		return
	}
	t.Kill()
	m.reg.Unregister(t)
	delete(m.timelines, name)
	m.log.Debug("timeline killed", "name", name)
}

// KillAll kills and removes every timeline.
func (m *Manager) KillAll() {
	for name := range m.timelines {
		m.Kill(name)
	}
}

// PauseAll pauses every timeline.
func (m *Manager) PauseAll() {
	for _, t := range m.timelines {
		t.Pause()
	}
}

// ResumeAll resumes every timeline.
func (m *Manager) ResumeAll() {
	for _, t := range m.timelines {
		t.Resume()
	}
}

// Progress returns the progress of the timeline named
// name, if it exists.
func (m *Manager) Progress(name string) (float64, bool) {
	t, ok := m.timelines[name]
	if !ok {
		return 0, false
	}
	return t.Progress(), true
}

// All returns the names of every timeline, sorted.
func (m *Manager) All() []string {
	return slices.Sorted(maps.Keys(m.timelines))
}

// Len returns the number of timelines.
func (m *Manager) Len() int { return len(m.timelines) }

// OnCreated calls f with the timeline named name.
// If no such timeline exists, f is called by every later
// Create with that name instead.
func (m *Manager) OnCreated(name string, f func(*Timeline)) {
	if t, ok := m.timelines[name]; ok {
		f(t)
		return
	}
	m.listeners[name] = append(m.listeners[name], f)
}

// Debug logs the state of every timeline.
func (m *Manager) Debug() {
	for _, name := range m.All() {
		t := m.timelines[name]
		m.log.Info("timeline",
			"name", name,
			"progress", t.Progress(),
			"paused", t.Paused(),
			"duration", t.Duration())
	}
}
