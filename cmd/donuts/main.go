// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Donuts is an interactive scene drawn in the terminal.
// Hovering over an object highlights it and clicking it
// plays an animation.
//
// Keys: d toggles bounding volumes, p pauses, q quits.
// Changes to the configuration file are applied while
// running.
// The right button logs the state of every animation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gviegas/interact/config"
	"github.com/gviegas/interact/host"
	"github.com/gviegas/interact/host/term"
	"github.com/gviegas/interact/linear"
	"github.com/gviegas/interact/loop"
	"github.com/gviegas/interact/raycast"
	"github.com/gviegas/interact/scene"

	xterm "golang.org/x/term"
)

func main() {
	path := flag.String("config", "", "configuration file (.toml, .yaml or .yml)")
	debug := flag.Bool("debug", false, "draw bounding volumes")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *debug {
		cfg.Debug = true
	}

	log, closeLog, err := openLog(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(log)
	err = run(cfg, *path, log)
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openLog creates a logger that writes to the configured
// file, or that discards everything if there is none.
// The terminal itself is the render surface.
func openLog(c config.Log) (*slog.Logger, func(), error) {
	if c.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("donuts: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.Level})
	return slog.New(h), func() { f.Close() }, nil
}

// aspect returns the aspect ratio of a terminal surface.
// Cells are about twice as tall as they are wide.
func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(2*height)
}

func run(cfg config.Config, path string, log *slog.Logger) error {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("donuts: standard output is not a terminal")
	}
	h, err := term.Open(term.Config{Interval: cfg.Interval(), Logger: log})
	if err != nil {
		return err
	}
	defer h.Close()

	w, ht := h.Size()
	cam := scene.NewCamera(cfg.Camera.Fov, aspect(w, ht), cfg.Camera.Far)
	cam.Position = linear.V3{0, 0, cfg.Camera.Distance}
	cam.LookAt(&linear.V3{}, &linear.V3{0, 1, 0})

	sc := scene.New()
	wd := newWorld(cfg, sc, log)

	lp, err := loop.Create(loop.Config{
		Driver:   h,
		Renderer: term.NewRenderer(h.Screen()),
		Scene:    sc,
		Camera:   cam,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	defer loop.Teardown()
	rc, err := raycast.Create(raycast.Config{
		Camera:   cam,
		Source:   h,
		Throttle: time.Duration(cfg.Throttle),
		Far:      cfg.Camera.Far,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	defer raycast.Teardown()

	wd.wire(lp, rc)
	h.OnResize(func(width, height int) {
		cam.SetAspect(aspect(width, height))
		raycast.Must().Refresh()
	})
	h.OnKey(func(r rune) {
		switch r {
		case 'd':
			wd.toggleDebug(raycast.Must())
		case 'p':
			wd.togglePause(loop.Must())
		}
	})
	h.OnPress(func(btn host.Button, _, _ float64) {
		if btn == host.BtnRight {
			wd.anims.Debug()
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if path != "" {
		go func() {
			err := config.Watch(ctx, path, log, func(c config.Config) {
				if err := h.Post(func() { wd.apply(c, raycast.Must()) }); err != nil {
					log.Warn("config reload dropped", "err", err)
				}
			})
			if err != nil {
				log.Warn("config watch stopped", "err", err)
			}
		}()
	}
	lp.Start()
	if err := h.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
