// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raycast

import (
	"github.com/gviegas/interact/scene"
)

// HelperColor is the color of debug helpers.
var HelperColor = scene.Color{R: 255, G: 255}

// EnableDebug adds a wireframe box to sc for each tracked
// object, outlining its bounding volume. Objects tracked
// later also get one. Helpers follow Refresh and are
// removed along with their objects.
// It returns the helpers created by this call.
// Objects with an empty bounding volume get no helper.
func (s *System) EnableDebug(sc *scene.Scene) []*scene.Node {
	if s.disposed || sc == nil {
		return nil
	}
	s.debug = sc
	var ns []*scene.Node
	ents := s.objs.Entries()
	for i := range ents {
		e := &ents[i].Data
		if e.helper != nil {
			continue
		}
		if n := s.addHelper(e); n != nil {
			ns = append(ns, n)
		}
	}
	s.log.Debug("debug helpers enabled", "helpers", len(ns))
	return ns
}

// DisableDebug removes every debug helper.
func (s *System) DisableDebug() {
	ents := s.objs.Entries()
	for i := range ents {
		e := &ents[i].Data
		if e.helper != nil {
			e.helper.Remove()
			e.helper = nil
		}
	}
	s.debug = nil
}

func (s *System) addHelper(e *entry) *scene.Node {
	if e.box.IsEmpty() {
		return nil
	}
	n := scene.NewNode()
	n.Name = e.node.Name + ".bounds"
	n.Color = HelperColor
	n.Geometry = scene.NewWireBox(&e.box)
	e.helper = n
	s.debug.Add(n)
	return n
}

func (s *System) updateHelper(e *entry) {
	if e.box.IsEmpty() {
		e.helper.Remove()
		e.helper = nil
		return
	}
	e.helper.Geometry = scene.NewWireBox(&e.box)
}
