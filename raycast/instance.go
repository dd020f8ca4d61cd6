// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raycast

import (
	"github.com/gviegas/interact/guard"
)

var instance = guard.New[System]("raycast")

// Create constructs the process-wide System from cfg.
// Only the first successful call constructs a System;
// later calls ignore cfg and return that same System.
func Create(cfg Config) (*System, error) {
	return instance.Init(func() (*System, error) { return New(cfg) })
}

// Instance returns the process-wide System.
// It fails with an error matching guard.ErrUninitialized
// if Create has not been called.
func Instance() (*System, error) { return instance.Get() }

// Must is like Instance but panics on failure.
func Must() *System { return instance.Must() }

// Teardown disposes and discards the process-wide System,
// if any.
func Teardown() {
	if s := instance.Reset(); s != nil {
		s.Dispose()
	}
}
