package impulse

import (
	"github.com/oliverbestmann/impulse/gm"
)

// Body is a rigid body owning exactly one Shape. All fields are in world
// space. A body with InvMass == 0 and InvInertia == 0 is static, it is never
// moved by integration or impulses and only acts as an immovable obstacle.
type Body struct {
	Shape Shape

	Position        gm.Vec
	Orient          gm.Rad
	Velocity        gm.Vec
	AngularVelocity float64

	// per tick inputs, cleared by the scene at the end of every step
	Force  gm.Vec
	Torque float64

	StaticFriction  float64
	DynamicFriction float64
	Restitution     float64

	Mass       float64
	InvMass    float64
	Inertia    float64
	InvInertia float64
}

// NewBody creates a body at the given position. The mass properties are
// computed once from the shape geometry and the given density; for polygons
// this also recenters the vertices on the centroid.
func NewBody(shape Shape, position gm.Vec, density float64) *Body {
	mass := shape.computeMass(density)

	return &Body{
		Shape:    shape,
		Position: position,

		StaticFriction:  0.5,
		DynamicFriction: 0.3,
		Restitution:     0.2,

		Mass:       mass.Mass,
		InvMass:    mass.InvMass,
		Inertia:    mass.Inertia,
		InvInertia: mass.InvInertia,
	}
}

// ApplyForce adds to the force accumulated for the current tick.
func (b *Body) ApplyForce(force gm.Vec) {
	b.Force = b.Force.Add(force)
}

// ApplyImpulse applies an instantaneous change in momentum at the given
// contact arm relative to the center of mass.
func (b *Body) ApplyImpulse(impulse, contactArm gm.Vec) {
	b.Velocity = b.Velocity.Add(impulse.Mul(b.InvMass))
	b.AngularVelocity += b.InvInertia * contactArm.Cross(impulse)
}

// SetStatic freezes the body in place by zeroing its mass and inertia.
func (b *Body) SetStatic() {
	b.Mass = 0
	b.InvMass = 0
	b.Inertia = 0
	b.InvInertia = 0
}

// SetOrient sets the orientation of the body and rebuilds the rotation
// matrix of a polygon shape.
func (b *Body) SetOrient(angle gm.Rad) {
	b.Orient = angle

	if polygon, ok := b.Shape.(*Polygon); ok {
		polygon.Orientation = gm.RotationMat(angle)
	}
}

// IsStatic reports whether the body is frozen in place.
func (b *Body) IsStatic() bool {
	return b.InvMass == 0
}

// integrateForces advances the velocities by half a time step. Together with
// the second half step applied after the position update this forms a
// symplectic Euler step.
func (b *Body) integrateForces(gravity gm.Vec, delta float64) {
	if b.InvMass == 0 {
		return
	}

	b.Velocity = b.Velocity.Add(b.Force.Mul(b.InvMass).Add(gravity).Mul(delta / 2))
	b.AngularVelocity += b.Torque * b.InvInertia * (delta / 2)
}

// integrateVelocity advances position and orientation by a full time step
// and applies the second velocity half step.
func (b *Body) integrateVelocity(gravity gm.Vec, delta float64) {
	if b.InvMass == 0 {
		return
	}

	b.Position = b.Position.Add(b.Velocity.Mul(delta))
	b.SetOrient(b.Orient + gm.Rad(b.AngularVelocity*delta))

	b.integrateForces(gravity, delta)
}
