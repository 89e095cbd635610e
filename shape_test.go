package impulse

import (
	"math"
	"testing"

	"github.com/oliverbestmann/impulse/gm"
	"github.com/stretchr/testify/require"
)

func TestCircle_ComputeMass(t *testing.T) {
	body := NewBody(NewCircle(5), gm.Vec{}, 2)

	require.InDelta(t, math.Pi*25*2, body.Mass, 1e-9)
	require.InDelta(t, body.Mass*25, body.Inertia, 1e-9)

	require.Greater(t, body.Mass, 0.0)
	require.Greater(t, body.Inertia, 0.0)

	require.InDelta(t, 1/body.Mass, body.InvMass, 1e-12)
	require.InDelta(t, 1/body.Inertia, body.InvInertia, 1e-12)
}

func TestPolygon_ComputeMass(t *testing.T) {
	t.Run("box", func(t *testing.T) {
		body := NewBody(NewBox(10, 5), gm.Vec{}, 2)

		// area 20 x 10, density 2
		require.InDelta(t, 400, body.Mass, 1e-9)
		require.Greater(t, body.Inertia, 0.0)
	})

	t.Run("recenters on centroid", func(t *testing.T) {
		// a unit box shifted away from the origin
		polygon := NewPolygon([]gm.Vec{
			{X: 9, Y: 9},
			{X: 11, Y: 9},
			{X: 11, Y: 11},
			{X: 9, Y: 11},
		})

		body := NewBody(polygon, gm.Vec{}, 1)
		require.InDelta(t, 4, body.Mass, 1e-9)

		// vertices are translated so the centroid becomes the local origin
		var centroid gm.Vec
		for _, vertex := range polygon.Vertices {
			centroid = centroid.Add(vertex.Position)
		}

		require.InDelta(t, 0, centroid.X, 1e-9)
		require.InDelta(t, 0, centroid.Y, 1e-9)

		require.InDelta(t, -1, polygon.Vertices[0].Position.X, 1e-9)
		require.InDelta(t, -1, polygon.Vertices[0].Position.Y, 1e-9)
	})
}

func TestNewPolygon_Normals(t *testing.T) {
	polygon := NewBox(10, 5)

	expected := []gm.Vec{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
	}

	require.Len(t, polygon.Vertices, 4)

	for idx, vertex := range polygon.Vertices {
		require.InDelta(t, expected[idx].X, vertex.Normal.X, 1e-9)
		require.InDelta(t, expected[idx].Y, vertex.Normal.Y, 1e-9)
		require.InDelta(t, 1, vertex.Normal.Length(), 1e-9)
	}
}

func TestInverseOf_Zero(t *testing.T) {
	require.EqualValues(t, 0, inverseOf(0))
	require.EqualValues(t, 0.5, inverseOf(2))
}
