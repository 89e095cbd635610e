package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec_DotCross(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 3, Y: 4}

	require.EqualValues(t, 11, a.Dot(b))
	require.EqualValues(t, -2, a.Cross(b))
	require.EqualValues(t, 2, b.Cross(a))
	require.EqualValues(t, 0, a.Cross(a))
}

func TestVec_Perp(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	p := v.Perp()

	require.EqualValues(t, 0, v.Dot(p))
	require.Equal(t, Vec{X: -4, Y: 3}, p)
}

func TestVec_Length(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	require.EqualValues(t, 5, v.Length())
	require.EqualValues(t, 25, v.LengthSqr())

	n := v.Normalized()
	require.InDelta(t, 1, n.Length(), 1e-9)
}

func TestVec_DistanceSqrTo(t *testing.T) {
	a := Vec{X: 1, Y: 1}
	b := Vec{X: 4, Y: 5}
	require.EqualValues(t, 25, a.DistanceSqrTo(b))
	require.EqualValues(t, 5, a.DistanceTo(b))
}

func TestVec_Rotated(t *testing.T) {
	v := Vec{X: 1, Y: 0}

	r := v.Rotated(Rad(math.Pi / 2))
	require.InDelta(t, 0, r.X, 1e-9)
	require.InDelta(t, 1, r.Y, 1e-9)

	r = v.Rotated(Rad(math.Pi))
	require.InDelta(t, -1, r.X, 1e-9)
	require.InDelta(t, 0, r.Y, 1e-9)
}
