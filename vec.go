// Package geom2 provides a generic two-dimensional vector value type.
//
// A Vec2 carries one scalar per axis and the two axes may have different
// types. Operations are only offered for the component types that support
// them: arithmetic needs Number axes, remainder needs Integer axes, ordering
// needs Ordered axes. Operations that need a narrower constraint than the
// type itself are package-level functions rather than methods.
//
// The package does not interpose on scalar semantics. Integer overflow
// wraps, integer division by zero panics and floating-point results are
// exactly what the scalar operators produce for each component.
package geom2

import "fmt"

// Vec2 is a 2D vector with an X axis of type T and a Y axis of type U.
// The zero value is the zero vector.
type Vec2[T, U Number] struct {
	X T
	Y U
}

// Sq is a vector whose two axes share a type.
type Sq[T Number] = Vec2[T, T]

// Common instantiations. Vec is the default one.
type (
	Vec   = Vec2[int32, int32]
	Vec2i = Vec2[int, int]
	Vec2l = Vec2[int64, int64]
	Vec2f = Vec2[float32, float32]
	Vec2d = Vec2[float64, float64]
)

// New returns the vector (x, y).
func New[T, U Number](x T, y U) Vec2[T, U] { return Vec2[T, U]{X: x, Y: y} }

// Iso returns the vector (n, n).
func Iso[T Number](n T) Sq[T] { return Sq[T]{X: n, Y: n} }

// Zero returns (0, 0). It is the same as the zero value.
func Zero[T, U Number]() Vec2[T, U] { return Vec2[T, U]{} }

// String renders the vector as "x y".
func (a Vec2[T, U]) String() string { return fmt.Sprintf("%v %v", a.X, a.Y) }

// XY returns both components.
func (a Vec2[T, U]) XY() (T, U) { return a.X, a.Y }
