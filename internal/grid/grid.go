// Package grid models families of parallel lines drifting over a set of
// fixed points, and reports when a point is touched by a line.
package grid

import (
	"image/color"
	"math"

	"geom2"
)

// Family represents a family of infinite parallel grid lines.
// Each line satisfies n·(p - center) = k*Spacing + Offset for some integer k.
type Family struct {
	Normal    geom2.Vec2d // unit length
	Spacing   float64     // pixels between lines
	Offset    float64     // pixels along normal from center
	Color     color.Color
	Thickness float64 // half-thickness used for touch detection and drawing width
}

// NewFamily returns a family whose lines are perpendicular to dir.
func NewFamily(dir geom2.Vec2d, spacing, thickness float64, c color.Color) Family {
	return Family{Normal: Normalize(dir), Spacing: spacing, Color: c, Thickness: thickness}
}

// Drift moves the lines by the component of step along the normal.
func (f *Family) Drift(step geom2.Vec2d) {
	f.Offset += geom2.Dot(f.Normal, step)
}

// Distance returns how far p is from the closest line of the family.
func (f Family) Distance(center, p geom2.Vec2d) float64 {
	along := geom2.Dot(f.Normal, p.Sub(center))
	k := math.Round((along - f.Offset) / f.Spacing)
	return math.Abs(along - (k*f.Spacing + f.Offset))
}

// Touches reports whether p lies within the thickness band of a line.
func (f Family) Touches(center, p geom2.Vec2d) bool {
	return f.Distance(center, p) <= f.Thickness
}

// Segment is a drawable piece of a line.
type Segment struct{ From, To geom2.Vec2d }

// Segments returns the lines that pass within reach of center, each cut
// to length 2*reach.
func (f Family) Segments(center geom2.Vec2d, reach float64) []Segment {
	t := Perp(f.Normal)
	kMin := int(math.Floor((-reach-f.Offset)/f.Spacing)) - 1
	kMax := int(math.Ceil((reach-f.Offset)/f.Spacing)) + 1

	segs := make([]Segment, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		pt := center.Add(geom2.MulScalar(f.Normal, float64(k)*f.Spacing+f.Offset))
		arm := geom2.MulScalar(t, reach)
		segs = append(segs, Segment{From: pt.Add(arm), To: pt.Sub(arm)})
	}
	return segs
}
