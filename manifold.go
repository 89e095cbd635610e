package impulse

import (
	"math"

	"github.com/oliverbestmann/impulse/gm"
)

// ManifoldData is the geometric contact between two bodies for one tick. A
// and B index into the scene's body list, the unit Normal points from body A
// towards body B and every contact point is in world space.
type ManifoldData struct {
	A, B        int
	Penetration float64
	Normal      gm.Vec
	Contacts    []gm.Vec
}

// Manifold is a ManifoldData together with the material parameters resolved
// for the current tick. It is consumed by the solver within the same tick
// and then discarded.
type Manifold struct {
	ManifoldData

	// combined restitution and friction coefficients
	E  float64
	SF float64
	DF float64
}

// initialize resolves the combined material parameters from the two bodies
// using their current velocities.
func (d ManifoldData) initialize(gravity gm.Vec, delta float64, bodyA, bodyB *Body) Manifold {
	e := math.Min(bodyA.Restitution, bodyB.Restitution)

	// friction coefficients are taken from body a alone
	sf := math.Abs(bodyA.StaticFriction)
	df := math.Abs(bodyA.DynamicFriction)

	// a contact moving slower than one tick worth of gravity is resting,
	// resolving it with restitution would turn jitter into bouncing
	resting := gravity.Mul(delta).LengthSqr() + epsilon

	for _, contact := range d.Contacts {
		ra := contact.Sub(bodyA.Position)
		rb := contact.Sub(bodyB.Position)

		rv := bodyB.Velocity.Add(rb.Perp().Mul(bodyB.AngularVelocity)).
			Sub(bodyA.Velocity).Sub(ra.Perp().Mul(bodyA.AngularVelocity))

		if rv.LengthSqr() < resting {
			e = 0
		}
	}

	return Manifold{
		ManifoldData: d,
		E:            e,
		SF:           sf,
		DF:           df,
	}
}
