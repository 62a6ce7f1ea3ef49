package grid_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geom2"
	"geom2/internal/grid"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, geom2.New(0.6, 0.8), grid.Normalize(geom2.New(3.0, 4.0)))
	assert.Equal(t, geom2.Vec2d{}, grid.Normalize(geom2.Vec2d{}))
	assert.InDelta(t, 1.0, geom2.Mag(grid.Normalize(geom2.New(1.0, 1.0))), 1e-12)
}

func TestPerpAndAngle(t *testing.T) {
	assert.Equal(t, geom2.New(-2.0, 1.0), grid.Perp(geom2.New(1.0, 2.0)))
	assert.Equal(t, 0.0, geom2.Dot(grid.Perp(geom2.New(3.0, -5.0)), geom2.New(3.0, -5.0)))

	v := grid.FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)
	assert.InDelta(t, math.Pi/2, grid.Angle(v), 1e-12)
}

func TestFamilyDistance(t *testing.T) {
	f := grid.NewFamily(geom2.New(1.0, 0.0), 10, 2, color.White)
	center := geom2.Vec2d{}

	assert.Equal(t, 0.0, f.Distance(center, geom2.New(20.0, 7.0)))
	assert.Equal(t, 3.0, f.Distance(center, geom2.New(23.0, -1.0)))
	assert.Equal(t, 4.0, f.Distance(center, geom2.New(-6.0, 0.0)))
	assert.True(t, f.Touches(center, geom2.New(11.5, 0.0)))
	assert.False(t, f.Touches(center, geom2.New(15.0, 0.0)))

	f.Drift(geom2.New(5.0, 100.0))
	assert.Equal(t, 5.0, f.Offset, "only the component along the normal moves the lines")
	assert.Equal(t, 0.0, f.Distance(center, geom2.New(15.0, 0.0)))
}

func TestSegments(t *testing.T) {
	f := grid.NewFamily(geom2.New(0.0, 1.0), 10, 1, color.White)
	segs := f.Segments(geom2.Vec2d{}, 20)
	require.NotEmpty(t, segs)
	for _, s := range segs {
		// horizontal lines spaced on multiples of 10
		assert.Equal(t, s.From.Y, s.To.Y)
		assert.Equal(t, 0.0, math.Mod(s.From.Y, 10))
		assert.Equal(t, 40.0, grid.Dist(s.From, s.To))
	}
	assert.Equal(t, -30.0, segs[0].From.Y)
	assert.Equal(t, 30.0, segs[len(segs)-1].From.Y)
}

func TestFieldStep(t *testing.T) {
	fam := grid.NewFamily(geom2.New(1.0, 0.0), 10, 1, color.White)
	fam.Offset = 5
	field := grid.NewField(geom2.Vec2d{}, []grid.Family{fam}, []geom2.Vec2d{geom2.New(0.0, 0.0)})

	require.Equal(t, 0, field.Step(geom2.New(1.0, 0.0)), "offset 6, point 4 away")
	require.Equal(t, 0, field.Step(geom2.New(2.0, 0.0)), "offset 8, still outside")
	require.Equal(t, 1, field.Step(geom2.New(2.0, 0.0)), "offset 10, point on a line")
	require.Equal(t, 0, field.Step(geom2.New(0.5, 0.0)), "still inside, no new touch")
	require.Equal(t, 0, field.Step(geom2.New(4.0, 0.0)), "left the band")
	require.Equal(t, 1, field.Step(geom2.New(5.5, 0.0)), "entered the next line")
}

func TestFieldPoints(t *testing.T) {
	fam := grid.NewFamily(geom2.New(1.0, 0.0), 10, 1, color.White)
	field := grid.NewField(geom2.Vec2d{}, []grid.Family{fam}, []geom2.Vec2d{geom2.New(55.0, 50.0)})

	assert.Equal(t, 0, field.Nearest(geom2.New(57.0, 52.0), 10))
	assert.Equal(t, -1, field.Nearest(geom2.New(75.0, 50.0), 10))

	field.AddPoint(geom2.New(100.0, 0.0))
	require.Len(t, field.Points, 2)
	assert.Equal(t, 1, field.Nearest(geom2.New(101.0, 0.0), 10))
	assert.Equal(t, 1, field.Step(geom2.Vec2d{}), "the new point sits on a line")

	field.RemovePoint(0)
	require.Equal(t, []geom2.Vec2d{geom2.New(100.0, 0.0)}, field.Points)
	assert.Equal(t, 0, field.Step(geom2.Vec2d{}), "remaining point was already inside")
}
