// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides the scene graph that the loop
// renders and the interaction system hit-tests.
package scene

// Scene defines a scene graph.
type Scene struct {
	root Node
}

// New creates an initialized scene.
func New() *Scene { return new(Scene).Init() }

// Init initializes a scene.
func (s *Scene) Init() *Scene {
	s.root = Node{Name: "root"}
	s.root.Init()
	return s
}

// Root returns the root node of s.
// It is not visited by ForEach.
func (s *Scene) Root() *Node { return &s.root }

// Add inserts nodes as immediate descendants of the root.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		s.root.Insert(n)
	}
}

// Remove detaches n from the graph.
func (s *Scene) Remove(n *Node) {
	if n != &s.root {
		n.Remove()
	}
}

// ForEach calls f for every node in s.
// Ancestors are processed first.
func (s *Scene) ForEach(f func(*Node)) { s.root.ForEach(f) }

// Len returns the number of nodes in s.
func (s *Scene) Len() (n int) {
	s.ForEach(func(*Node) { n++ })
	return
}

// Contains returns whether n belongs to s.
func (s *Scene) Contains(n *Node) bool {
	for ; n != nil; n = n.Parent() {
		if n == &s.root {
			return true
		}
	}
	return false
}
