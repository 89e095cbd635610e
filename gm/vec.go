package gm

import (
	"fmt"
	"image"
	"math"
)

type Scalar interface {
	float32 | float64 | int32
}

type Vec32 = VecType[float32]
type Vec64 = VecType[float64]

type Vec = Vec64

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

// VecSplat returns a vector with both components set to the given value.
func VecSplat[S Scalar](value S) VecType[S] {
	return VecType[S]{X: value, Y: value}
}

type VecType[S Scalar] struct {
	X, Y S
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v VecType[S]) Neg() VecType[S] {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Dot returns the dot product of the two vectors.
func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2d cross product of the two vectors, i.e. the z component
// of the cross product of both vectors extended into 3d space.
func (v VecType[S]) Cross(other VecType[S]) S {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by 90°. Scaling the perpendicular of a
// contact arm by an angular velocity gives the linear velocity of the
// contact point due to rotation.
func (v VecType[S]) Perp() VecType[S] {
	return VecType[S]{X: -v.Y, Y: v.X}
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v VecType[S]) DistanceTo(other VecType[S]) S {
	return other.Sub(v).Length()
}

func (v VecType[S]) DistanceSqrTo(other VecType[S]) S {
	return other.Sub(v).LengthSqr()
}

// Rotated returns the vector rotated by the given angle.
func (v VecType[S]) Rotated(angle Rad) VecType[S] {
	sin, cos := math.Sincos(float64(angle))

	return VecType[S]{
		X: S(float64(v.X)*cos - float64(v.Y)*sin),
		Y: S(float64(v.X)*sin + float64(v.Y)*cos),
	}
}

func (v VecType[S]) ToImagePoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}
