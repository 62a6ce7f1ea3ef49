package geom2

import "cmp"

// Equal reports whether both components are equal. It matches a == b;
// a vector with a NaN component is not equal to itself.
func (a Vec2[T, U]) Equal(b Vec2[T, U]) bool {
	return a.X == b.X && a.Y == b.Y
}

// Compare orders vectors lexicographically: X first, then Y on a tie.
// It returns -1, 0 or +1 and can be passed to slices.SortFunc.
// NaN sorts before every other value, as in cmp.Compare.
func Compare[T, U Ordered](a, b Vec2[T, U]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Less reports whether a sorts before b in the order of Compare.
func Less[T, U Ordered](a, b Vec2[T, U]) bool {
	return Compare(a, b) < 0
}

// PartialCompare orders vectors by both axes at once. a is less than b
// only if neither axis of a is greater than b's and at least one is
// smaller. ok is false when the axes disagree, or when a component is NaN.
func PartialCompare[T, U Ordered](a, b Vec2[T, U]) (c int, ok bool) {
	cx, okx := partial(a.X, b.X)
	cy, oky := partial(a.Y, b.Y)
	switch {
	case !okx || !oky:
		return 0, false
	case cx == cy || cy == 0:
		return cx, true
	case cx == 0:
		return cy, true
	}
	return 0, false
}

func partial[T Ordered](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}
