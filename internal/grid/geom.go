package grid

import (
	"math"

	"geom2"
)

// Normalize returns v scaled to unit length, or the zero vector for zero input.
func Normalize(v geom2.Vec2d) geom2.Vec2d {
	l := geom2.Mag(v)
	if l == 0 {
		return geom2.Vec2d{}
	}
	return geom2.DivScalar(v, l)
}

// Perp returns v rotated by 90 degrees.
func Perp(v geom2.Vec2d) geom2.Vec2d { return geom2.New(-v.Y, v.X) }

// FromAngle returns the unit vector at angle a (radians).
func FromAngle(a float64) geom2.Vec2d { return geom2.New(math.Cos(a), math.Sin(a)) }

// Angle returns the heading of v in radians.
func Angle(v geom2.Vec2d) float64 { return math.Atan2(v.Y, v.X) }

// Dist returns the distance between a and b.
func Dist(a, b geom2.Vec2d) float64 { return geom2.Mag(a.Sub(b)) }
