package geom2

import "math"

// Dot returns a.X*b.X + a.Y*b.Y.
func Dot[T Number](a, b Sq[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Mag2 returns the squared magnitude of a, which is Dot(a, a).
// Use it over Mag when only relative lengths matter.
func Mag2[T Number](a Sq[T]) T {
	return Dot(a, a)
}

// Mag returns the length of a. The squared magnitude is computed in T
// and then widened to float64, so it can overflow for integer axes.
func Mag[T Real](a Sq[T]) float64 {
	return math.Sqrt(float64(Mag2(a)))
}

// Cardinal returns the unit step toward the closest direction whose angle
// is a multiple of 45 degrees. Each component is -1, 0 or 1; the zero
// vector maps to itself.
func Cardinal[T SignedReal](a Sq[T]) Sq[T] {
	ax, ay := abs(a.X), abs(a.Y)
	out := Sq[T]{X: sign(a.X), Y: sign(a.Y)}
	if ax < ay {
		out.X = 0
	}
	if ax > ay {
		out.Y = 0
	}
	return out
}

// sign is [v >= 0] - [v <= 0].
func sign[T SignedReal](v T) T {
	var s T
	if v >= 0 {
		s++
	}
	if v <= 0 {
		s--
	}
	return s
}

func abs[T SignedReal](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
