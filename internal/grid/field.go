package grid

import "geom2"

// Field tracks which points are inside which family's band so that only
// entering a band counts as a touch.
type Field struct {
	Center   geom2.Vec2d
	Families []Family
	Points   []geom2.Vec2d

	inside [][]bool // [family][point]
}

// NewField returns a field with no point inside any band yet.
func NewField(center geom2.Vec2d, families []Family, points []geom2.Vec2d) *Field {
	f := &Field{Center: center, Families: families, Points: points}
	f.inside = make([][]bool, len(families))
	for i := range f.inside {
		f.inside[i] = make([]bool, len(points))
	}
	return f
}

// Nearest returns the index of the closest point within radius of p, or -1.
func (f *Field) Nearest(p geom2.Vec2d, radius float64) int {
	idx := -1
	best := radius
	for i, q := range f.Points {
		if d := Dist(p, q); d <= best {
			best = d
			idx = i
		}
	}
	return idx
}

func (f *Field) AddPoint(p geom2.Vec2d) {
	f.Points = append(f.Points, p)
	for i := range f.inside {
		f.inside[i] = append(f.inside[i], false)
	}
}

func (f *Field) RemovePoint(idx int) {
	f.Points = append(f.Points[:idx], f.Points[idx+1:]...)
	for i, row := range f.inside {
		f.inside[i] = append(row[:idx], row[idx+1:]...)
	}
}

// Step drifts every family by step and returns how many points entered a band.
func (f *Field) Step(step geom2.Vec2d) int {
	hits := 0
	for fi := range f.Families {
		f.Families[fi].Drift(step)
		fam := f.Families[fi]
		for pi, p := range f.Points {
			in := fam.Touches(f.Center, p)
			if in && !f.inside[fi][pi] {
				hits++
			}
			f.inside[fi][pi] = in
		}
	}
	return hits
}
