package geometry

// Aabb is an axis-aligned bounding box stored as a center and half-size.
type Aabb struct {
	center   Vector3
	halfsize Vector3
}

// NewAabb constructs an Aabb from its center and halfsize.
func NewAabb(center, halfsize Vector3) Aabb {
	return Aabb{center: center, halfsize: halfsize}
}

// AabbFromBounds constructs an Aabb from its min/max bounds.
func AabbFromBounds(min, max Vector3) Aabb {
	center := min.Add(max).Scale(0.5)
	halfsize := max.Sub(min).Scale(0.5)
	return NewAabb(center, halfsize)
}

// UnitAabb returns the Aabb centered at the origin with halfsize 0.5.
func UnitAabb() Aabb {
	return NewAabb(ZeroVector3(), NewVector3(0.5, 0.5, 0.5))
}

// Center returns the center of the Aabb.
func (a Aabb) Center() Vector3 {
	return a.center
}

// Halfsize returns the halfsize of the Aabb.
func (a Aabb) Halfsize() Vector3 {
	return a.halfsize
}

// Min returns the minimum bound of the Aabb.
func (a Aabb) Min() Vector3 {
	return a.center.Sub(a.halfsize)
}

// Max returns the maximum bound of the Aabb.
func (a Aabb) Max() Vector3 {
	return a.center.Add(a.halfsize)
}

// Octant returns the child Aabb identified by Morton/Z-order octant k,
// where bit 2 selects the x sign, bit 1 the y sign, and bit 0 the z sign
// (0 is negative, 1 is positive). Panics if octant is not in [0,8).
func (a Aabb) Octant(octant int) Aabb {
	if octant < 0 || octant >= 8 {
		panic("geometry: invalid octant")
	}

	h := a.halfsize.Scale(0.5)

	dx, dy, dz := -h.X, -h.Y, -h.Z
	if octant&4 != 0 {
		dx = h.X
	}
	if octant&2 != 0 {
		dy = h.Y
	}
	if octant&1 != 0 {
		dz = h.Z
	}

	center := a.center.Add(NewVector3(dx, dy, dz))
	return NewAabb(center, h)
}
