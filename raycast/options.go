// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raycast

import (
	"github.com/gviegas/interact/scene"
)

// Kind identifies the events that a handler subscribes to.
type Kind int

// Kinds of subscription.
const (
	// Hover handlers receive the intersection on every
	// processed pointer motion over the object, and nil
	// when the pointer leaves it.
	Hover Kind = iota
	// Click handlers receive the intersection when the
	// object is clicked.
	Click
	// Both handlers receive both kinds of notification.
	Both
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Hover:
		return "hover"
	case Click:
		return "click"
	case Both:
		return "both"
	}
	return "unknown"
}

// accepts returns whether a handler of kind k is notified
// of events of kind ev (either Hover or Click).
func (k Kind) accepts(ev Kind) bool { return k == ev || k == Both }

// Options configures a handler.
// The zero value subscribes to Hover with priority 0 and
// the handler enabled.
type Options struct {
	Kind Kind
	// Priority breaks ties between objects hit at the
	// same distance. Higher wins.
	Priority int
	// Disabled handlers are not notified, and objects with
	// no enabled handler for an event are not candidates
	// for it.
	Disabled bool
}

// Handler is called with the intersection that selected
// its object, or with nil when the pointer leaves an object
// previously hovered.
// hit is shared by every handler notified of the same
// event and must not be modified.
type Handler func(hit *scene.Hit)

type handler struct {
	fn   Handler
	opts Options
}
