// Package geometry provides the vector, bounding-volume, and primitive
// shape types used throughout the mesh and spatial packages, along with
// the spatial intersection predicates between them.
package geometry

import "math"

// Epsilon is the geometric tolerance used by every predicate in this
// package. It is fixed globally rather than threaded through call chains.
const Epsilon = 1e-8

// Vector3 is a three-component double-precision vector.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 constructs a Vector3 from its components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// ZeroVector3 returns a Vector3 of all zeros.
func ZeroVector3() Vector3 {
	return Vector3{}
}

// OnesVector3 returns a Vector3 of all ones.
func OnesVector3() Vector3 {
	return Vector3{X: 1, Y: 1, Z: 1}
}

// At returns the component at index i. Panics if i is out of [0,3).
func (v Vector3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geometry: vector3 index out of range")
	}
}

// Set returns a copy of v with the component at index i replaced.
// Panics if i is out of [0,3).
func (v Vector3) Set(i int, value float64) Vector3 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("geometry: vector3 index out of range")
	}
	return v
}

// DotVector3 computes the dot product u . v.
func DotVector3(u, v Vector3) float64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

// CrossVector3 computes the cross product u x v.
func CrossVector3(u, v Vector3) Vector3 {
	return Vector3{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
}

// AngleVector3 computes the angle, in radians, between u and v.
func AngleVector3(u, v Vector3) float64 {
	cos := DotVector3(u, v) / (u.Mag() * v.Mag())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Mag returns the magnitude of v.
func (v Vector3) Mag() float64 {
	return math.Sqrt(DotVector3(v, v))
}

// Unit returns v scaled to unit magnitude.
func (v Vector3) Unit() Vector3 {
	return v.Scale(1 / v.Mag())
}

// Inv returns the component-wise inverse of v.
func (v Vector3) Inv() Vector3 {
	return Vector3{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z}
}

// Abs returns the component-wise absolute value of v.
func (v Vector3) Abs() Vector3 {
	return Vector3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// MinIndex returns the index of the minimal component.
func (v Vector3) MinIndex() int {
	index, value := 0, v.X
	for i := 1; i < 3; i++ {
		if c := v.At(i); c < value {
			index, value = i, c
		}
	}
	return index
}

// MaxIndex returns the index of the maximal component.
func (v Vector3) MaxIndex() int {
	index, value := 0, v.X
	for i := 1; i < 3; i++ {
		if c := v.At(i); c > value {
			index, value = i, c
		}
	}
	return index
}

// Add returns u + v.
func (u Vector3) Add(v Vector3) Vector3 {
	return Vector3{X: u.X + v.X, Y: u.Y + v.Y, Z: u.Z + v.Z}
}

// AddScalar returns u + s (broadcast to every component).
func (u Vector3) AddScalar(s float64) Vector3 {
	return Vector3{X: u.X + s, Y: u.Y + s, Z: u.Z + s}
}

// Sub returns u - v.
func (u Vector3) Sub(v Vector3) Vector3 {
	return Vector3{X: u.X - v.X, Y: u.Y - v.Y, Z: u.Z - v.Z}
}

// SubScalar returns u - s (broadcast to every component).
func (u Vector3) SubScalar(s float64) Vector3 {
	return Vector3{X: u.X - s, Y: u.Y - s, Z: u.Z - s}
}

// Mul returns the component-wise product u * v.
func (u Vector3) Mul(v Vector3) Vector3 {
	return Vector3{X: u.X * v.X, Y: u.Y * v.Y, Z: u.Z * v.Z}
}

// Scale returns u * s.
func (u Vector3) Scale(s float64) Vector3 {
	return Vector3{X: u.X * s, Y: u.Y * s, Z: u.Z * s}
}

// Div returns the component-wise quotient u / v.
func (u Vector3) Div(v Vector3) Vector3 {
	return Vector3{X: u.X / v.X, Y: u.Y / v.Y, Z: u.Z / v.Z}
}

// DivScalar returns u / s.
func (u Vector3) DivScalar(s float64) Vector3 {
	return Vector3{X: u.X / s, Y: u.Y / s, Z: u.Z / s}
}

// Neg returns -u.
func (u Vector3) Neg() Vector3 {
	return Vector3{X: -u.X, Y: -u.Y, Z: -u.Z}
}
