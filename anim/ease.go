// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package anim

import (
	"math"
)

// Ease maps linear progress in [0, 1] to eased progress.
// It must return 0 for 0 and 1 for 1.
type Ease func(t float64) float64

// Easing functions.
var (
	Linear    Ease = func(t float64) float64 { return t }
	InQuad    Ease = func(t float64) float64 { return t * t }
	OutQuad   Ease = func(t float64) float64 { return t * (2 - t) }
	InOutQuad Ease = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
	OutCubic Ease = func(t float64) float64 {
		t--
		return t*t*t + 1
	}
	InOutSine Ease = func(t float64) float64 { return (1 - math.Cos(math.Pi*t)) / 2 }
)

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }
