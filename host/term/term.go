// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package term implements a host that renders to a
// terminal and takes pointer input from it.
// The surface unit is the character cell.
package term

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gviegas/interact/host"
)

func newErr(s string) error { return errors.New("term: " + s) }

// Config is the configuration of a Host.
type Config struct {
	// Screen to use. Defaults to tcell.NewScreen().
	Screen tcell.Screen
	// Period of the refresh signal. Defaults to 1/60s.
	Interval time.Duration
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Host is a host.Driver and host.Source backed by a
// terminal screen.
type Host struct {
	screen   tcell.Screen
	interval time.Duration
	log      *slog.Logger
	width    int
	height   int
	buttons  tcell.ButtonMask
	frame    func()
	moves    host.Listeners[func(x, y float64, at time.Time)]
	clicks   host.Listeners[func(x, y float64)]
	presses  host.Listeners[func(btn host.Button, x, y float64)]
	keys     host.Listeners[func(r rune)]
	resizes  host.Listeners[func(width, height int)]
}

// Open initializes the terminal screen and enables mouse
// motion reporting.
func Open(cfg Config) (*Host, error) {
	scr := cfg.Screen
	if scr == nil {
		var err error
		if scr, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("term: %w", err)
		}
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	scr.EnableMouse(tcell.MouseMotionEvents)
	scr.HideCursor()
	scr.Clear()
	h := newHost(scr, cfg)
	h.width, h.height = scr.Size()
	h.log.Info("host open", "width", h.width, "height", h.height)
	return h, nil
}

func newHost(scr tcell.Screen, cfg Config) *Host {
	h := &Host{
		screen:   scr,
		interval: cfg.Interval,
		log:      cfg.Logger,
	}
	if h.interval <= 0 {
		h.interval = time.Second / 60
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	h.log = h.log.With("component", "term")
	return h
}

// Screen returns the underlying screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.DisableMouse()
	h.screen.Fini()
	h.log.Info("host closed")
}

// SetAnimationLoop implements host.Driver.
func (h *Host) SetAnimationLoop(f func()) { h.frame = f }

// OnPointerMove implements host.Source.
// Positions are those of cell centers.
func (h *Host) OnPointerMove(f func(x, y float64, at time.Time)) func() {
	return h.moves.Add(f)
}

// OnClick implements host.Source.
// A click is reported when the primary button is pressed.
func (h *Host) OnClick(f func(x, y float64)) func() {
	return h.clicks.Add(f)
}

// OnPress registers f to be called whenever any button is
// pressed.
func (h *Host) OnPress(f func(btn host.Button, x, y float64)) func() {
	return h.presses.Add(f)
}

// OnKey registers f to be called for every rune typed,
// except those that quit Run.
func (h *Host) OnKey(f func(r rune)) func() { return h.keys.Add(f) }

// OnResize registers f to be called when the terminal is
// resized.
func (h *Host) OnResize(f func(width, height int)) func() {
	return h.resizes.Add(f)
}

// Post arranges for f to be called on the goroutine that
// runs Run. It is safe to call from any goroutine.
func (h *Host) Post(f func()) error {
	return h.screen.PostEvent(tcell.NewEventInterrupt(f))
}

// Size implements host.Source.
func (h *Host) Size() (int, int) { return h.width, h.height }

// Run pumps terminal events and the refresh signal on the
// calling goroutine until ctx is done, the screen is
// finalized, or the user quits with q, Esc or Ctrl-C.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return newErr("screen finalized")
			}
			if !h.handle(ev) {
				h.log.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			if h.frame != nil {
				h.frame()
			}
		}
	}
}

// handle dispatches ev to listeners.
// It returns false if ev requests to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' {
				return false
			}
			h.keys.Each(func(f func(rune)) { f(r) })
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := float64(cx)+0.5, float64(cy)+0.5
		at := ev.When()
		h.moves.Each(func(f func(float64, float64, time.Time)) { f(x, y, at) })
		btns := ev.Buttons()
		pressed := btns &^ h.buttons
		h.buttons = btns
		for _, b := range [...]struct {
			mask tcell.ButtonMask
			btn  host.Button
		}{
			{tcell.Button1, host.BtnLeft},
			{tcell.Button2, host.BtnRight},
			{tcell.Button3, host.BtnMiddle},
		} {
			if pressed&b.mask == 0 {
				continue
			}
			if b.btn == host.BtnLeft {
				h.clicks.Each(func(f func(float64, float64)) { f(x, y) })
			}
			h.presses.Each(func(f func(host.Button, float64, float64)) { f(b.btn, x, y) })
		}

	case *tcell.EventInterrupt:
		if f, ok := ev.Data().(func()); ok {
			f()
		}

	case *tcell.EventResize:
		h.width, h.height = ev.Size()
		if h.screen != nil {
			h.screen.Sync()
		}
		h.log.Debug("resized", "width", h.width, "height", h.height)
		h.resizes.Each(func(f func(int, int)) { f(h.width, h.height) })
	}
	return true
}
