package impulse

import (
	"iter"
	"math"

	"github.com/oliverbestmann/impulse/gm"
	"github.com/oliverbestmann/impulse/internal/assert"
)

// epsilon is the tolerance used by the solver's near-equality checks.
const epsilon = 0.0001

// equalWithin reports whether two values are equal up to epsilon.
func equalWithin(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// positional correction, see Scene.correctPositions
const (
	// penetration below the slop is tolerated and not corrected
	correctionSlop = 0.05

	// fraction of the remaining penetration corrected per tick
	correctionPercent = 0.4
)

// Config holds the parameters of a Scene. Every scene carries its own copy,
// independent simulations can run with different parameters side by side.
type Config struct {
	// Gravity is the acceleration applied to every dynamic body. The
	// default points down in screen space, towards positive y.
	Gravity gm.Vec

	// Iterations is the number of passes of the sequential impulse solver
	// per tick.
	Iterations int

	// TimeStep is the fixed tick length in seconds the scene is meant to
	// be advanced by. The scene does not pace itself, the driver is
	// expected to accumulate wall clock time and call Step at this cadence.
	TimeStep float64
}

// DefaultConfig returns the configuration the simulation was tuned with.
func DefaultConfig() Config {
	return Config{
		Gravity:    gm.Vec{Y: 500},
		Iterations: 10,
		TimeStep:   1.0 / 60.0,
	}
}

// Scene owns all bodies of one simulation and drives the per tick pipeline.
// A scene is not safe for concurrent use; bodies may be added between ticks
// only, an index handed out by Add stays valid for the scene's lifetime.
type Scene struct {
	config Config
	bodies []*Body
}

func NewScene(config Config) *Scene {
	return &Scene{config: config}
}

// Config returns the configuration the scene was created with.
func (s *Scene) Config() Config {
	return s.config
}

// Add appends a body to the scene and returns its index.
func (s *Scene) Add(body *Body) int {
	s.bodies = append(s.bodies, body)
	return len(s.bodies) - 1
}

// Len returns the number of bodies in the scene.
func (s *Scene) Len() int {
	return len(s.bodies)
}

// Body returns the body at the given index.
func (s *Scene) Body(idx int) *Body {
	assert.IndexInRange(idx, len(s.bodies))
	return s.bodies[idx]
}

// All iterates over all bodies in index order. This is the read surface for
// a renderer: shape, position, orientation and InvMass to tell static from
// dynamic bodies.
func (s *Scene) All() iter.Seq2[int, *Body] {
	return func(yield func(int, *Body) bool) {
		for idx, body := range s.bodies {
			if !yield(idx, body) {
				return
			}
		}
	}
}

// Step advances the simulation by delta seconds.
func (s *Scene) Step(delta float64) {
	// first half of the symplectic Euler step
	for _, body := range s.bodies {
		body.integrateForces(s.config.Gravity, delta)
	}

	contacts := s.generateContacts()

	manifolds := make([]Manifold, 0, len(contacts))
	for _, contact := range contacts {
		bodyA, bodyB := s.bodyPair(contact.A, contact.B)
		manifolds = append(manifolds, contact.initialize(s.config.Gravity, delta, bodyA, bodyB))
	}

	for range s.config.Iterations {
		for idx := range manifolds {
			s.applyImpulse(&manifolds[idx])
		}
	}

	// position update plus the second velocity half step
	for _, body := range s.bodies {
		body.integrateVelocity(s.config.Gravity, delta)
	}

	for idx := range manifolds {
		s.correctPositions(&manifolds[idx])
	}

	// forces are per tick inputs
	for _, body := range s.bodies {
		body.Force = gm.Vec{}
		body.Torque = 0
	}
}

// generateContacts runs the narrow phase over all body pairs i < j. Pairs of
// two static bodies never produce a contact.
func (s *Scene) generateContacts() []ManifoldData {
	var contacts []ManifoldData

	for i := 0; i < len(s.bodies); i++ {
		bodyA := s.bodies[i]

		for j := i + 1; j < len(s.bodies); j++ {
			bodyB := s.bodies[j]

			if bodyA.InvMass == 0 && bodyB.InvMass == 0 {
				continue
			}

			if contact, ok := collide(i, j, bodyA, bodyB); ok {
				contacts = append(contacts, contact)
			}
		}
	}

	return contacts
}

// bodyPair returns the two distinct bodies referenced by a manifold. All
// contact processing goes through this accessor, requesting the same index
// twice is a programming error and panics.
func (s *Scene) bodyPair(idxA, idxB int) (*Body, *Body) {
	assert.DistinctIndices(idxA, idxB)
	assert.IndexInRange(idxA, len(s.bodies))
	assert.IndexInRange(idxB, len(s.bodies))

	return s.bodies[idxA], s.bodies[idxB]
}

// applyImpulse runs one sequential impulse pass over the manifold, first
// resolving the velocity along the contact normal, then applying Coulomb
// friction along the tangent.
func (s *Scene) applyImpulse(m *Manifold) {
	bodyA, bodyB := s.bodyPair(m.A, m.B)

	if equalWithin(bodyA.InvMass+bodyB.InvMass, 0) {
		// two effectively infinite masses, the constraint is unsolvable
		bodyA.Velocity = gm.Vec{}
		bodyB.Velocity = gm.Vec{}
		return
	}

	contactCount := float64(len(m.Contacts))

	for _, contact := range m.Contacts {
		ra := contact.Sub(bodyA.Position)
		rb := contact.Sub(bodyB.Position)

		rv := bodyB.Velocity.Add(rb.Perp().Mul(bodyB.AngularVelocity)).
			Sub(bodyA.Velocity).Sub(ra.Perp().Mul(bodyA.AngularVelocity))

		contactVel := rv.Dot(m.Normal)
		if contactVel > 0 {
			// bodies are separating already
			return
		}

		raCrossN := ra.Cross(m.Normal)
		rbCrossN := rb.Cross(m.Normal)

		invMassSum := bodyA.InvMass + bodyB.InvMass +
			raCrossN*raCrossN*bodyA.InvInertia +
			rbCrossN*rbCrossN*bodyB.InvInertia

		// normal impulse, split evenly across the contact points
		j := -(1 + m.E) * contactVel / invMassSum / contactCount

		impulse := m.Normal.Mul(j)
		bodyA.ApplyImpulse(impulse.Neg(), ra)
		bodyB.ApplyImpulse(impulse, rb)

		// friction works on the velocities left after the normal impulse
		rv = bodyB.Velocity.Add(rb.Perp().Mul(bodyB.AngularVelocity)).
			Sub(bodyA.Velocity).Sub(ra.Perp().Mul(bodyA.AngularVelocity))

		tangent := rv.Sub(m.Normal.Mul(rv.Dot(m.Normal)))
		if !equalWithin(tangent.Length(), 0) {
			tangent = tangent.Normalized()
		}

		jt := -rv.Dot(tangent) / invMassSum / contactCount
		if equalWithin(jt, 0) {
			return
		}

		// Coulomb cone: stick while below static friction, otherwise
		// slide with dynamic friction
		var tangentImpulse gm.Vec
		if math.Abs(jt) < j*m.SF {
			tangentImpulse = tangent.Mul(jt)
		} else {
			tangentImpulse = tangent.Mul(-j * m.DF)
		}

		bodyA.ApplyImpulse(tangentImpulse.Neg(), ra)
		bodyB.ApplyImpulse(tangentImpulse, rb)
	}
}

// correctPositions nudges the two bodies of a manifold apart to remove a
// fraction of the remaining penetration. Correcting only a fraction per tick
// and tolerating the slop keeps resting contacts from jittering.
func (s *Scene) correctPositions(m *Manifold) {
	bodyA, bodyB := s.bodyPair(m.A, m.B)

	amount := math.Max(m.Penetration-correctionSlop, 0) /
		(bodyA.InvMass + bodyB.InvMass) * correctionPercent

	correction := m.Normal.Mul(amount)

	bodyA.Position = bodyA.Position.Sub(correction.Mul(bodyA.InvMass))
	bodyB.Position = bodyB.Position.Add(correction.Mul(bodyB.InvMass))
}
