package geom2_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geom2"
)

func TestDot(t *testing.T) {
	require.Equal(t, 25, geom2.Dot(geom2.New(3, 4), geom2.New(3, 4)))
	require.Equal(t, -2, geom2.Dot(geom2.New(1, 2), geom2.New(-4, 1)))
	require.Equal(t, 0.0, geom2.Dot(geom2.New(1.0, 0.0), geom2.New(0.0, 1.0)))

	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, geom2.Dot(a, b), geom2.Dot(b, a), "symmetric %v %v", a, b)
		}
	}
}

func TestMag(t *testing.T) {
	v := geom2.New(3, 4)
	require.Equal(t, 25, geom2.Mag2(v))
	require.Equal(t, 5.0, geom2.Mag(v))
	require.Equal(t, 5.0, geom2.Mag(geom2.New(float32(-3), float32(4))))
	require.Equal(t, 0.0, geom2.Mag(geom2.Vec{}))
}

func TestMagAgreesWithMag2(t *testing.T) {
	for _, a := range samples {
		require.Equal(t, geom2.Dot(a, a), geom2.Mag2(a))
		if a == (geom2.Vec2i{}) {
			continue
		}
		m2 := float64(geom2.Mag2(a))
		m := geom2.Mag(a)
		ulp := math.Nextafter(m2, math.Inf(1)) - m2
		assert.InDelta(t, m2, m*m, 2*ulp, "%v", a)
	}
}

func TestCardinal(t *testing.T) {
	tests := []struct {
		in, want geom2.Vec2i
	}{
		{geom2.New(0, 0), geom2.New(0, 0)},
		{geom2.New(3, 1), geom2.New(1, 0)},
		{geom2.New(1, 3), geom2.New(0, 1)},
		{geom2.New(2, 2), geom2.New(1, 1)},
		{geom2.New(-2, 2), geom2.New(-1, 1)},
		{geom2.New(-5, 1), geom2.New(-1, 0)},
		{geom2.New(4, -9), geom2.New(0, -1)},
		{geom2.New(0, -3), geom2.New(0, -1)},
		{geom2.New(-7, -7), geom2.New(-1, -1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, geom2.Cardinal(tt.in), "%v", tt.in)
	}

	assert.Equal(t, geom2.New(1.0, 0.0), geom2.Cardinal(geom2.New(0.5, -0.2)))
	assert.Equal(t, geom2.New(-1.0, 1.0), geom2.Cardinal(geom2.New(-0.25, 0.25)))
}
