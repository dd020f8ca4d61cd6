// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package guard provides handles to process-wide values
// that are constructed once, on demand, and must not be
// used before that.
package guard

import (
	"errors"
	"sync"
)

// ErrUninitialized is matched (through errors.Is) by every
// UninitializedError.
var ErrUninitialized = errors.New("used before initialization")

// UninitializedError is the error produced when a Handle is
// accessed before its value has been constructed.
type UninitializedError struct {
	// Name of the guarded value.
	Name string
}

func (e *UninitializedError) Error() string {
	return e.Name + ": " + ErrUninitialized.Error()
}

// Is reports whether target is ErrUninitialized.
func (e *UninitializedError) Is(target error) bool { return target == ErrUninitialized }

// Handle guards a lazily constructed *T.
// The zero value is an uninitialized handle named "".
type Handle[T any] struct {
	name string
	mu   sync.Mutex
	v    *T
}

// New creates an uninitialized handle.
// name identifies the value in errors.
func New[T any](name string) *Handle[T] { return &Handle[T]{name: name} }

// Init constructs the guarded value by calling f, unless
// this was done already, and returns the value that the
// handle holds.
// Only the first successful call has any effect; later
// calls do not call f. If f fails, the handle remains
// uninitialized and the error is returned.
func (h *Handle[T]) Init(f func() (*T, error)) (*T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.v == nil {
		v, err := f()
		if err != nil {
			return nil, err
		}
		h.v = v
	}
	return h.v, nil
}

// Get returns the guarded value, or an *UninitializedError
// if Init has not been called.
func (h *Handle[T]) Get() (*T, error) {
	h.mu.Lock()
	v := h.v
	h.mu.Unlock()
	if v == nil {
		return nil, &UninitializedError{h.name}
	}
	return v, nil
}

// Must is like Get but panics with the *UninitializedError.
func (h *Handle[T]) Must() *T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Ready returns whether Init has been called.
func (h *Handle[T]) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.v != nil
}

// Reset returns the handle to the uninitialized state.
// It returns the value that was held, if any, so the
// caller can release it.
func (h *Handle[T]) Reset() *T {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.v
	h.v = nil
	return v
}
