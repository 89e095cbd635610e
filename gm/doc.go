// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, a 2d matrix type Mat and an
// affine transform matrix named Affine.
//
// There is also a type named Rad to represent angle values in radian.
package gm
