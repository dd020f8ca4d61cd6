// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var l Listeners[func(*[]int)]
	var got []int
	c1 := l.Add(func(s *[]int) { *s = append(*s, 1) })
	l.Add(func(s *[]int) { *s = append(*s, 2) })
	c3 := l.Add(func(s *[]int) { *s = append(*s, 3) })
	assert.Equal(t, 3, l.Len())

	l.Each(func(f func(*[]int)) { f(&got) })
	assert.Equal(t, []int{1, 2, 3}, got)

	c1()
	c1()
	got = nil
	l.Each(func(f func(*[]int)) { f(&got) })
	assert.Equal(t, []int{2, 3}, got)

	// Removal while iterating takes effect on the next call.
	got = nil
	l.Each(func(f func(*[]int)) {
		c3()
		f(&got)
	})
	assert.Equal(t, []int{2, 3}, got)
	got = nil
	l.Each(func(f func(*[]int)) { f(&got) })
	assert.Equal(t, []int{2}, got)
}
