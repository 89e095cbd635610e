package impulse

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/impulse/gm"
)

// collide dispatches to the narrow phase test matching the shape pair. The
// returned manifold keeps the argument order of the matched test, its normal
// points from the first towards the second body.
//
// There is no polygon-polygon test yet. Hitting that pair is a scope gap,
// not a runtime input error, so it fails hard.
func collide(idxA, idxB int, bodyA, bodyB *Body) (ManifoldData, bool) {
	switch shapeA := bodyA.Shape.(type) {
	case *Circle:
		switch shapeB := bodyB.Shape.(type) {
		case *Circle:
			return circleCircle(idxA, idxB, shapeA, shapeB, bodyA, bodyB)
		case *Polygon:
			return circlePolygon(idxA, idxB, shapeA, shapeB, bodyA, bodyB)
		}

	case *Polygon:
		switch shapeB := bodyB.Shape.(type) {
		case *Circle:
			return circlePolygon(idxB, idxA, shapeB, shapeA, bodyB, bodyA)
		}
	}

	panic(fmt.Sprintf("no collision test for shape pair %T, %T", bodyA.Shape, bodyB.Shape))
}

// circleCircle tests two circles for overlap.
func circleCircle(idxA, idxB int, circleA, circleB *Circle, bodyA, bodyB *Body) (ManifoldData, bool) {
	normal := bodyB.Position.Sub(bodyA.Position)

	distanceSqr := normal.LengthSqr()
	radius := circleA.Radius + circleB.Radius

	if distanceSqr >= radius*radius {
		return ManifoldData{}, false
	}

	distance := math.Sqrt(distanceSqr)

	if distance == 0 {
		// circles occupy the exact same spot, pick an arbitrary normal
		return ManifoldData{
			A:           idxA,
			B:           idxB,
			Penetration: circleA.Radius,
			Normal:      gm.Vec{X: 1},
			Contacts:    []gm.Vec{bodyA.Position},
		}, true
	}

	normal = normal.Mul(1 / distance)

	return ManifoldData{
		A:           idxA,
		B:           idxB,
		Penetration: radius - distance,
		Normal:      normal,
		Contacts:    []gm.Vec{normal.Mul(circleA.Radius).Add(bodyA.Position)},
	}, true
}

// circlePolygon tests a circle against a convex polygon. The circle is body
// A, the polygon body B.
func circlePolygon(idxA, idxB int, circle *Circle, polygon *Polygon, bodyA, bodyB *Body) (ManifoldData, bool) {
	// move the circle center into the polygon's local, unrotated frame
	center := polygon.Orientation.Transposed().Transform(bodyA.Position.Sub(bodyB.Position))

	// find the face with the largest signed distance to the circle center
	separation := math.Inf(-1)
	faceIdx := 0

	for idx, vertex := range polygon.Vertices {
		s := vertex.Normal.Dot(center.Sub(vertex.Position))

		if s > circle.Radius {
			return ManifoldData{}, false
		}

		if s > separation {
			separation = s
			faceIdx = idx
		}
	}

	v1 := polygon.Vertices[faceIdx]
	v2 := polygon.Vertices[(faceIdx+1)%len(polygon.Vertices)]

	if separation < epsilon {
		// center is within the polygon, push out along the face normal
		normal := polygon.Orientation.Transform(v1.Normal).Neg()

		return ManifoldData{
			A:           idxA,
			B:           idxB,
			Penetration: circle.Radius,
			Normal:      normal,
			Contacts:    []gm.Vec{normal.Mul(circle.Radius).Add(bodyA.Position)},
		}, true
	}

	// voronoi region of the face: closest to v1, v2 or the face itself
	dot1 := center.Sub(v1.Position).Dot(v2.Position.Sub(v1.Position))
	dot2 := center.Sub(v2.Position).Dot(v1.Position.Sub(v2.Position))
	penetration := circle.Radius - separation

	switch {
	case dot1 <= 0:
		if center.DistanceSqrTo(v1.Position) > circle.Radius*circle.Radius {
			return ManifoldData{}, false
		}

		normal := polygon.Orientation.Transform(v1.Position.Sub(center))
		if !equalWithin(normal.Length(), 0) {
			normal = normal.Normalized()
		}

		return ManifoldData{
			A:           idxA,
			B:           idxB,
			Penetration: penetration,
			Normal:      normal,
			Contacts:    []gm.Vec{polygon.Orientation.Transform(v1.Position).Add(bodyB.Position)},
		}, true

	case dot2 <= 0:
		if center.DistanceSqrTo(v2.Position) > circle.Radius*circle.Radius {
			return ManifoldData{}, false
		}

		normal := polygon.Orientation.Transform(v2.Position.Sub(center))
		if !equalWithin(normal.Length(), 0) {
			normal = normal.Normalized()
		}

		return ManifoldData{
			A:           idxA,
			B:           idxB,
			Penetration: penetration,
			Normal:      normal,
			Contacts:    []gm.Vec{polygon.Orientation.Transform(v2.Position).Add(bodyB.Position)},
		}, true

	default:
		if center.Sub(v1.Position).Dot(v1.Normal) > circle.Radius {
			return ManifoldData{}, false
		}

		normal := polygon.Orientation.Transform(v1.Normal).Neg()

		return ManifoldData{
			A:           idxA,
			B:           idxB,
			Penetration: penetration,
			Normal:      normal,
			Contacts:    []gm.Vec{normal.Mul(circle.Radius).Add(bodyA.Position)},
		}, true
	}
}
