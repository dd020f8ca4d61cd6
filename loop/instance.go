// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package loop

import (
	"github.com/gviegas/interact/guard"
)

var instance = guard.New[Loop]("loop")

// Create constructs the process-wide Loop from cfg.
// Only the first successful call constructs a Loop; later
// calls ignore cfg and return that same Loop.
func Create(cfg Config) (*Loop, error) {
	return instance.Init(func() (*Loop, error) { return New(cfg) })
}

// Instance returns the process-wide Loop.
// It fails with an error matching guard.ErrUninitialized
// if Create has not been called.
func Instance() (*Loop, error) { return instance.Get() }

// Must is like Instance but panics on failure.
// Use it where calling before Create is a programming
// error.
func Must() *Loop { return instance.Must() }

// Teardown stops and discards the process-wide Loop, if any.
// A later call to Create constructs a new one.
func Teardown() {
	if l := instance.Reset(); l != nil {
		l.Stop()
	}
}
