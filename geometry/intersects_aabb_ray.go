package geometry

import "math"

// IntersectsRay reports whether the ray r hits the box a, using a slab
// test. The ray is a forward-only half-line.
func (a Aabb) IntersectsRay(r Ray) bool {
	origin := r.Origin()
	inv := r.Direction().Inv()
	min, max := a.Min(), a.Max()

	tx0 := (min.X - origin.X) * inv.X
	tx1 := (max.X - origin.X) * inv.X
	tmin := math.Min(tx0, tx1)
	tmax := math.Max(tx0, tx1)

	ty0 := (min.Y - origin.Y) * inv.Y
	ty1 := (max.Y - origin.Y) * inv.Y
	tmin = math.Max(tmin, math.Min(ty0, ty1))
	tmax = math.Min(tmax, math.Max(ty0, ty1))

	tz0 := (min.Z - origin.Z) * inv.Z
	tz1 := (max.Z - origin.Z) * inv.Z
	tmin = math.Max(tmin, math.Min(tz0, tz1))
	tmax = math.Min(tmax, math.Max(tz0, tz1))

	return tmax >= math.Max(tmin, 0)
}

// IntersectsAabb reports whether the ray r hits the box a.
func (r Ray) IntersectsAabb(a Aabb) bool {
	return a.IntersectsRay(r)
}
