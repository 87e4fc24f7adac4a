package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// ToR3 converts v to a github.com/golang/geo/r3.Vector, for interop with
// callers already working in that package's large-scale geospatial types.
func (v Vector3) ToR3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// VectorFromR3 converts an r3.Vector to a Vector3.
func VectorFromR3(v r3.Vector) Vector3 {
	return NewVector3(v.X, v.Y, v.Z)
}

// ToMgl64 converts v to a github.com/go-gl/mathgl/mgl64.Vec3, for interop
// with an OpenGL-facing render loop.
func (v Vector3) ToMgl64() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// VectorFromMgl64 converts an mgl64.Vec3 to a Vector3.
func VectorFromMgl64(v mgl64.Vec3) Vector3 {
	return NewVector3(v[0], v[1], v[2])
}

// BoundsR3 returns the Aabb's min/max bounds as a pair of r3.Vector.
func (a Aabb) BoundsR3() (min, max r3.Vector) {
	return a.Min().ToR3(), a.Max().ToR3()
}
