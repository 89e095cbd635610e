// Package impulse implements a discrete-time, impulse-based 2d rigid body
// physics simulation. A Scene owns a set of bodies, detects pairwise
// contacts, resolves them with an iterative sequential-impulse solver
// including Coulomb friction, corrects residual penetration and advances the
// bodies by a fixed time step.
package impulse

import (
	"math"

	"github.com/oliverbestmann/impulse/gm"
)

// Shape is the geometry owned by a Body. Implementations are *Circle and
// *Polygon. Collision dispatch switches over the concrete pair, so a future
// polygon-polygon test slots into the scene without touching the solver.
type Shape interface {
	// computeMass derives the mass properties of the shape for the given
	// density. For polygons this recenters the vertices on the centroid,
	// all later geometry assumes the centroid is the local origin.
	computeMass(density float64) massData
}

type massData struct {
	Mass       float64
	InvMass    float64
	Inertia    float64
	InvInertia float64
}

// inverseOf defines the inverse of zero as zero. Static bodies carry zero
// mass and inertia and are represented through their zero inverses.
func inverseOf(value float64) float64 {
	if value == 0 {
		return 0
	}

	return 1 / value
}

type Circle struct {
	Radius float64
}

func NewCircle(radius float64) *Circle {
	return &Circle{Radius: radius}
}

func (c *Circle) computeMass(density float64) massData {
	mass := math.Pi * c.Radius * c.Radius * density
	inertia := mass * c.Radius * c.Radius

	return massData{
		Mass:       mass,
		InvMass:    inverseOf(mass),
		Inertia:    inertia,
		InvInertia: inverseOf(inertia),
	}
}

// Vertex is a polygon corner in local space together with the outward unit
// normal of the face starting at this corner.
type Vertex struct {
	Position gm.Vec
	Normal   gm.Vec
}

// Polygon is a convex polygon with positive winding (positive signed area).
// Orientation rotates the local space vertex data into world space and is
// rebuilt whenever the owning body changes its orientation.
type Polygon struct {
	Orientation gm.Mat
	Vertices    []Vertex
}

// NewPolygon builds a polygon from the given corner points. The points must
// describe a convex outline with positive winding; the face normals are
// derived from consecutive edges.
func NewPolygon(points []gm.Vec) *Polygon {
	vertices := make([]Vertex, len(points))

	for idx, point := range points {
		next := points[(idx+1)%len(points)]
		edge := next.Sub(point)

		vertices[idx] = Vertex{
			Position: point,
			Normal:   gm.Vec{X: edge.Y, Y: -edge.X}.Normalized(),
		}
	}

	return &Polygon{
		Orientation: gm.IdentityMat(),
		Vertices:    vertices,
	}
}

// NewBox builds an axis aligned box polygon with the given half extents.
func NewBox(halfWidth, halfHeight float64) *Polygon {
	return NewPolygon([]gm.Vec{
		{X: -halfWidth, Y: -halfHeight},
		{X: halfWidth, Y: -halfHeight},
		{X: halfWidth, Y: halfHeight},
		{X: -halfWidth, Y: halfHeight},
	})
}

func (p *Polygon) computeMass(density float64) massData {
	var centroid gm.Vec
	var area, inertia float64

	const kInv3 = 1.0 / 3.0

	for idx := range p.Vertices {
		// triangle fanned from the implicit origin, third vertex (0, 0)
		p1 := p.Vertices[idx].Position
		p2 := p.Vertices[(idx+1)%len(p.Vertices)].Position

		d := p1.Cross(p2)
		triangleArea := 0.5 * d

		area += triangleArea

		// weight the centroid by area, not just by vertex position
		centroid = centroid.Add(p1.Add(p2).Mul(triangleArea * kInv3))

		intX2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		intY2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
		inertia += 0.25 * kInv3 * d * (intX2 + intY2)
	}

	centroid = centroid.Mul(1 / area)

	// move the centroid to the local origin
	for idx := range p.Vertices {
		p.Vertices[idx].Position = p.Vertices[idx].Position.Sub(centroid)
	}

	mass := density * area
	inertia *= density

	return massData{
		Mass:       mass,
		InvMass:    inverseOf(mass),
		Inertia:    inertia,
		InvInertia: inverseOf(inertia),
	}
}
